// Package payment implements the payment processors that settle an order.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/cimillas/checkout/internal/auth"
	"github.com/cimillas/checkout/internal/domain"
)

// Processor pays an order through one payment method.
type Processor interface {
	Pay(ctx context.Context, order *domain.Order) error
	Method() domain.PaymentMethod
}

// processor is shared by every method. It holds the bound credential and
// authorizer; the authorizer is not owned and may be shared with others.
type processor struct {
	method     domain.PaymentMethod
	credential string
	authorizer auth.Authorizer
	logger     *slog.Logger
	describe   func(logger *slog.Logger, credential string)
}

func (p *processor) Method() domain.PaymentMethod {
	return p.method
}

// Pay marks the order paid. If the bound authorizer reports unauthorized,
// Pay returns domain.ErrNotAuthorized and leaves the order untouched.
func (p *processor) Pay(ctx context.Context, order *domain.Order) error {
	if !p.authorizer.IsAuthorized() {
		return fmt.Errorf("%s payment: %w", p.method, domain.ErrNotAuthorized)
	}

	logger := p.logger.With("method", string(p.method))
	logger.InfoContext(ctx, "processing payment", "total", order.TotalPrice())
	p.describe(logger, p.credential)

	order.MarkPaid()
	return nil
}

func describeSecurityCode(logger *slog.Logger, code string) {
	logger.Info("verifying security code", "code", code)
}

func describeEmail(logger *slog.Logger, email string) {
	logger.Info("using email address", "email", email)
}

type Option func(*processor)

// WithLogger sets the logger used for payment diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// newProcessor treats a nil authorizer, including a typed nil pointer, as
// never verified.
func newProcessor(method domain.PaymentMethod, credential string, a auth.Authorizer, describe func(*slog.Logger, string), opts []Option) *processor {
	if isNil(a) {
		a = unverified{}
	}
	p := &processor{
		method:     method,
		credential: credential,
		authorizer: a,
		logger:     slog.Default(),
		describe:   describe,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Debit pays with a debit card. It requires the authorizer to be verified.
func Debit(securityCode string, a auth.Authorizer, opts ...Option) Processor {
	return newProcessor(domain.PaymentMethodDebit, securityCode, a, describeSecurityCode, opts)
}

// Credit pays with a credit card and never requires authorization.
func Credit(securityCode string, opts ...Option) Processor {
	return newProcessor(domain.PaymentMethodCredit, securityCode, auth.AlwaysGranted{}, describeSecurityCode, opts)
}

// Paypal pays through a PayPal account. It requires the authorizer to be verified.
func Paypal(email string, a auth.Authorizer, opts ...Option) Processor {
	return newProcessor(domain.PaymentMethodPaypal, email, a, describeEmail, opts)
}

// New selects the processor for method. The authorizer is ignored for
// methods that need none; a nil authorizer for one that does is treated
// as never verified.
func New(method domain.PaymentMethod, credential string, a auth.Authorizer, opts ...Option) (Processor, error) {
	switch method {
	case domain.PaymentMethodDebit:
		return Debit(credential, a, opts...), nil
	case domain.PaymentMethodCredit:
		return Credit(credential, opts...), nil
	case domain.PaymentMethodPaypal:
		return Paypal(credential, a, opts...), nil
	default:
		return nil, domain.ErrUnknownPaymentMethod
	}
}

func isNil(a auth.Authorizer) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

type unverified struct{}

func (unverified) IsAuthorized() bool { return false }
