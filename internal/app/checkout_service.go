package app

import (
	"context"
	"log/slog"
	"math"

	"github.com/cimillas/checkout/internal/auth"
	"github.com/cimillas/checkout/internal/clock"
	"github.com/cimillas/checkout/internal/domain"
	"github.com/cimillas/checkout/internal/payment"
	"github.com/google/uuid"
)

type ReceiptRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateReceipt(ctx context.Context, receipt domain.Receipt) error
	GetReceipt(ctx context.Context, id string) (domain.Receipt, error)
}

// AuthorizerLookup resolves a previously started authorization.
type AuthorizerLookup interface {
	Get(id string) (auth.Verifier, error)
}

type CheckoutService struct {
	repo        ReceiptRepository
	authorizers AuthorizerLookup
	clock       clock.Clock
	logger      *slog.Logger
}

func NewCheckoutService(repo ReceiptRepository, authorizers AuthorizerLookup, clk clock.Clock, logger *slog.Logger) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutService{
		repo:        repo,
		authorizers: authorizers,
		clock:       clk,
		logger:      logger,
	}
}

type CheckoutInput struct {
	Lines      []domain.LineItem
	Method     domain.PaymentMethod
	Credential string
	// AuthorizationID refers to an authorization started through
	// AuthorizationService. Empty means none was obtained.
	AuthorizationID string
}

type CheckoutResult struct {
	Order   *domain.Order
	Receipt domain.Receipt
}

func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if len(in.Lines) == 0 {
		return CheckoutResult{}, domain.ErrEmptyOrder
	}

	var authorizer auth.Authorizer
	if in.AuthorizationID != "" {
		a, err := s.authorizers.Get(in.AuthorizationID)
		if err != nil {
			return CheckoutResult{}, err
		}
		authorizer = a
	}

	processor, err := payment.New(in.Method, in.Credential, authorizer, payment.WithLogger(s.logger))
	if err != nil {
		return CheckoutResult{}, err
	}

	order := domain.NewOrder()
	for _, line := range in.Lines {
		order.AddItem(line.Name, line.Quantity, line.UnitPrice)
	}
	if total := order.TotalPrice(); math.IsInf(total, 0) || math.IsNaN(total) {
		return CheckoutResult{Order: order}, domain.ErrNonFiniteTotal
	}

	if err := processor.Pay(ctx, order); err != nil {
		s.logger.WarnContext(ctx, "payment rejected", "method", string(in.Method), "error", err)
		return CheckoutResult{Order: order}, err
	}

	receipt := domain.Receipt{
		ID:         uuid.NewString(),
		Method:     processor.Method(),
		Credential: in.Credential,
		Total:      order.TotalPrice(),
		ItemCount:  len(order.Items),
		PaidAt:     s.clock.Now(),
	}
	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.CreateReceipt(txCtx, receipt)
	})
	if err != nil {
		return CheckoutResult{Order: order}, err
	}

	s.logger.InfoContext(ctx, "order paid", "receipt_id", receipt.ID, "method", string(receipt.Method), "total", receipt.Total)
	return CheckoutResult{Order: order, Receipt: receipt}, nil
}

func (s *CheckoutService) GetReceipt(ctx context.Context, id string) (domain.Receipt, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Receipt{}, domain.ErrInvalidID
	}
	return s.repo.GetReceipt(ctx, id)
}
