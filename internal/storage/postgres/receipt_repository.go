package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/checkout/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReceiptRepository struct {
	pool *pgxpool.Pool
}

func NewReceiptRepository(pool *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{pool: pool}
}

func (r *ReceiptRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *ReceiptRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt) error {
	const stmt = `
INSERT INTO receipts (id, method, credential, total, item_count, paid_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.exec(ctx, stmt,
		receipt.ID, string(receipt.Method), receipt.Credential, receipt.Total, receipt.ItemCount, receipt.PaidAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

func (r *ReceiptRepository) GetReceipt(ctx context.Context, id string) (domain.Receipt, error) {
	const query = `
SELECT id, method, credential, total, item_count, paid_at
FROM receipts
WHERE id = $1`

	var rec domain.Receipt
	var method string
	err := r.queryRow(ctx, query, id).
		Scan(&rec.ID, &method, &rec.Credential, &rec.Total, &rec.ItemCount, &rec.PaidAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Receipt{}, domain.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Receipt{}, domain.ErrReceiptNotFound
		}
		return domain.Receipt{}, fmt.Errorf("get receipt: %w", err)
	}
	rec.Method = domain.PaymentMethod(method)
	rec.PaidAt = rec.PaidAt.UTC()
	return rec, nil
}

func (r *ReceiptRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ReceiptRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
