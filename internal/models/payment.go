package models

import "fmt"

type PaymentMethod string

const (
	CreditCard PaymentMethod = "Credit Card"
	DebitCard  PaymentMethod = "Debit Card"
	ApplePay   PaymentMethod = "Apple Pay"
	GooglePay  PaymentMethod = "Google Pay"
)

// ParsePaymentMethod validates a method against the fixed set.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case CreditCard, DebitCard, ApplePay, GooglePay:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method: %q", s)
}
