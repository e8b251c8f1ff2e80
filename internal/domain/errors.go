package domain

import "errors"

var (
	ErrNotAuthorized         = errors.New("not authorized")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrUnknownChannel        = errors.New("unknown verification channel")
	ErrAuthorizationNotFound = errors.New("authorization not found")
	ErrReceiptNotFound       = errors.New("receipt not found")
	ErrEmptyOrder            = errors.New("order has no items")
	ErrInvalidID             = errors.New("invalid id")
	ErrNonFiniteTotal        = errors.New("order total is not a finite number")
)
