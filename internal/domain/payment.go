package domain

import (
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

// ParsePaymentMethod accepts method names case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentMethodDebit, PaymentMethodCredit, PaymentMethodPaypal:
		return m, nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}

// Receipt records a successful payment.
type Receipt struct {
	ID         string
	Method     PaymentMethod
	Credential string
	Total      float64
	ItemCount  int
	PaidAt     time.Time
}
