package domain

import (
	"fmt"
	"strconv"
)

type Currency string

const INR Currency = "INR"

var currencySymbols = map[Currency]string{
	INR: "₹",
}

// Money holds whole rupees. The demo never deals in paise.
type Money struct {
	Amount   int64
	Currency Currency
}

// NewMoney creates a new Money instance
func NewMoney(amount int64, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// Rupees is shorthand for NewMoney(amount, INR).
func Rupees(amount int64) Money {
	return NewMoney(amount, INR)
}

// String renders the amount with its currency symbol, e.g. "₹500".
func (m Money) String() string {
	if symbol, ok := currencySymbols[m.Currency]; ok {
		return symbol + strconv.FormatInt(m.Amount, 10)
	}
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
