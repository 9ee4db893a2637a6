package domain

// UserAccount is a registered user. Email and phone are both unique keys.
// Password is kept in plain text; this is a demo and the stored format is
// part of the persisted layout.
type UserAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Credentials is the raw login input, optionally remembered between sessions.
type Credentials struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

type PaymentMethod string

const (
	Razorpay  PaymentMethod = "razorpay"
	PayPal    PaymentMethod = "paypal"
	UPI       PaymentMethod = "upi"
	PhonePe   PaymentMethod = "phonepe"
	GooglePay PaymentMethod = "googlepay"
)

// PaymentMethods lists the supported methods in display order.
var PaymentMethods = []PaymentMethod{Razorpay, PayPal, UPI, PhonePe, GooglePay}

var methodNames = map[PaymentMethod]string{
	Razorpay:  "Razorpay",
	PayPal:    "PayPal",
	UPI:       "UPI",
	PhonePe:   "PhonePe",
	GooglePay: "Google Pay",
}

var methodDescriptions = map[PaymentMethod]string{
	Razorpay:  "Cards, UPI, Wallets",
	PayPal:    "Secure PayPal payment",
	UPI:       "Unified Payments Interface",
	PhonePe:   "Pay with PhonePe",
	GooglePay: "Quick & secure payment",
}

// Valid reports whether m is one of the supported methods.
func (m PaymentMethod) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// DisplayName falls back to the raw identifier for unknown methods.
func (m PaymentMethod) DisplayName() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return string(m)
}

func (m PaymentMethod) Description() string {
	return methodDescriptions[m]
}

// PaymentRecord is the result of one simulated checkout. It is never
// modified after creation.
type PaymentRecord struct {
	Method        PaymentMethod `json:"method"`
	TransactionID string        `json:"transactionId"`
	Timestamp     string        `json:"date"`
}
