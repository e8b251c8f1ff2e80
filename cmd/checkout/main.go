// Command checkout runs a fixed payment walkthrough: it fills a basket,
// verifies an SMS code and pays the order by debit card.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cimillas/checkout/internal/auth"
	"github.com/cimillas/checkout/internal/clock"
	"github.com/cimillas/checkout/internal/config"
	"github.com/cimillas/checkout/internal/domain"
	"github.com/cimillas/checkout/internal/logging"
	"github.com/cimillas/checkout/internal/payment"
	"github.com/cimillas/checkout/internal/storage/memory"
	"github.com/google/uuid"
)

const (
	debitSecurityCode = "123456"
	smsCode           = 654321
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	if err := run(context.Background(), logger, memory.NewReceiptStore(), clock.System(), true); err != nil {
		logger.Error("payment failed", "error", err)
		os.Exit(1)
	}
}

// run pays the demo basket by debit. With verify false the SMS code is never
// entered, so the payment is refused with domain.ErrNotAuthorized.
func run(ctx context.Context, logger *slog.Logger, receipts *memory.ReceiptStore, clk clock.Clock, verify bool) error {
	order := domain.NewOrder()
	order.AddItem("Keyboard", 1, 200)
	order.AddItem("SSD", 1, 800)
	order.AddItem("USB cable", 2, 50)

	for _, line := range order.Lines() {
		logger.Info("line item", "name", line.Name, "quantity", line.Quantity, "unit_price", line.UnitPrice)
	}
	logger.Info("order created", "items", len(order.Items), "total", order.TotalPrice())

	authorizer := auth.NewSMS(logger)
	if verify {
		authorizer.Verify(smsCode)
	}

	processor := payment.Debit(debitSecurityCode, authorizer, payment.WithLogger(logger))
	if err := processor.Pay(ctx, order); err != nil {
		return err
	}

	receipt := domain.Receipt{
		ID:         uuid.NewString(),
		Method:     processor.Method(),
		Credential: debitSecurityCode,
		Total:      order.TotalPrice(),
		ItemCount:  len(order.Items),
		PaidAt:     clk.Now(),
	}
	if err := receipts.CreateReceipt(ctx, receipt); err != nil {
		return err
	}

	logger.Info("order paid", "status", string(order.Status), "receipt_id", receipt.ID)
	return nil
}
