// Package receipt renders a completed checkout as a plain text document.
package receipt

import (
	"fmt"
	"strings"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// Issuer is printed at the top of every receipt.
const Issuer = "TECHNOGENT Infotech Private Limited"

const ruleWidth = 37

// Format builds the receipt text. The output depends only on its arguments.
func Format(user domain.UserAccount, selection domain.ServiceSelection, record domain.PaymentRecord) string {
	rule := strings.Repeat("=", ruleWidth)

	var lines []string
	lines = append(lines, Issuer)
	lines = append(lines, "Payment Receipt")
	lines = append(lines, "")
	lines = append(lines, rule)
	lines = append(lines, fmt.Sprintf("Transaction ID: %s", record.TransactionID))
	lines = append(lines, fmt.Sprintf("Date & Time: %s", record.Timestamp))
	lines = append(lines, rule)
	lines = append(lines, "")

	lines = append(lines, "Customer Details:")
	lines = append(lines, fmt.Sprintf("Name: %s", user.Name))
	lines = append(lines, fmt.Sprintf("Email: %s", user.Email))
	lines = append(lines, fmt.Sprintf("Phone: %s", user.Phone))
	lines = append(lines, "")

	lines = append(lines, "Service Details:")
	lines = append(lines, fmt.Sprintf("Service: %s", selection.Type.Title()))
	lines = append(lines, fmt.Sprintf("Details: %s", selection.Details()))
	lines = append(lines, "")

	lines = append(lines, "Payment Details:")
	lines = append(lines, fmt.Sprintf("Payment Method: %s", record.Method.DisplayName()))
	lines = append(lines, fmt.Sprintf("Amount Paid: %s", selection.Price()))
	lines = append(lines, "")

	lines = append(lines, rule)
	lines = append(lines, "Status: SUCCESS")
	lines = append(lines, rule)
	lines = append(lines, "")
	lines = append(lines, "This is a demo transaction. No actual payment was processed.")
	lines = append(lines, "")
	lines = append(lines, "Thank you for using our payment platform!")

	return strings.Join(lines, "\n") + "\n"
}

// FileName is the suggested download name for the receipt of record.
func FileName(record domain.PaymentRecord) string {
	return fmt.Sprintf("receipt-%s.txt", record.TransactionID)
}
