package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

func newPayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay for a service and print the receipt",
		Long: `Run a whole checkout: log in, choose a service, choose a payment method, pay.

Credentials come from --user/--password, or from an earlier "login --remember".`,
		Example: `  payctl pay --service fastag --vehicle MH12AB1234 --vehicle-type Car --mobile 9876543210 --method upi
  payctl pay --service ferry --booking FB-1029 --method paypal --out receipts/`,
		Args: cobra.NoArgs,
		RunE: runPay,
	}

	cmd.Flags().String("user", "", "Email or phone to log in with")
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().String("service", "", "Service: fastag, education or ferry")
	cmd.Flags().String("vehicle", "", "FasTag vehicle number")
	cmd.Flags().String("vehicle-type", "", "FasTag vehicle type: Car, Bus or Truck")
	cmd.Flags().String("mobile", "", "FasTag registered mobile number")
	cmd.Flags().String("enrollment", "", "Education enrollment number")
	cmd.Flags().String("booking", "", "Ferry booking number")
	cmd.Flags().String("amount", "", "Amount in rupees, for services with a user-entered amount")
	cmd.Flags().String("method", "", "Payment method: razorpay, paypal, upi, phonepe or googlepay")
	cmd.Flags().String("out", "", "Write the receipt to this file or directory")

	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("method")
	return cmd
}

func runPay(cmd *cobra.Command, args []string) error {
	flag := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	fields := map[string]string{
		workflow.FieldVehicleNumber:    flag("vehicle"),
		workflow.FieldVehicleType:      flag("vehicle-type"),
		workflow.FieldRegisteredMobile: flag("mobile"),
		workflow.FieldEnrollmentNumber: flag("enrollment"),
		workflow.FieldBookingNumber:    flag("booking"),
		workflow.FieldAmount:           flag("amount"),
	}

	return withEnv(cmd, func(e *env) error {
		out := cmd.OutOrStdout()
		session := e.session()

		if _, err := logIn(cmd, session, flag("user"), flag("password"), false); err != nil {
			return err
		}

		sel, err := session.SelectService(domain.ServiceType(flag("service")), fields)
		if err != nil {
			return err
		}
		if err := session.ChoosePaymentMethod(domain.PaymentMethod(flag("method"))); err != nil {
			return err
		}

		printf(out, "Processing %s payment of %s...\n", domain.PaymentMethod(flag("method")).DisplayName(), sel.Price())
		if _, err := session.SubmitPayment(); err != nil {
			return err
		}

		text, fileName, err := session.Receipt()
		if err != nil {
			return err
		}
		printf(out, "%s", text)

		if dest := flag("out"); dest != "" {
			path, err := receiptPath(dest, fileName)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write receipt: %w", err)
			}
			printf(out, "Receipt saved to %s\n", path)
		}
		return nil
	})
}

// receiptPath resolves --out: an existing directory (or one named with a
// trailing separator) receives the receipt under its default file name.
func receiptPath(dest, fileName string) (string, error) {
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return filepath.Join(dest, fileName), nil
	}
	if os.IsPathSeparator(dest[len(dest)-1]) {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dest, err)
		}
		return filepath.Join(dest, fileName), nil
	}
	return dest, nil
}
