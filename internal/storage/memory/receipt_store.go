// Package memory keeps receipts in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/cimillas/checkout/internal/domain"
)

type ReceiptStore struct {
	mu       sync.RWMutex
	receipts map[string]domain.Receipt
	order    []string
}

func NewReceiptStore() *ReceiptStore {
	return &ReceiptStore{receipts: make(map[string]domain.Receipt)}
}

// WithTx runs fn directly; single writes are already atomic here.
func (s *ReceiptStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *ReceiptStore) CreateReceipt(_ context.Context, receipt domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.receipts[receipt.ID]; !exists {
		s.order = append(s.order, receipt.ID)
	}
	s.receipts[receipt.ID] = receipt
	return nil
}

func (s *ReceiptStore) GetReceipt(_ context.Context, id string) (domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.receipts[id]
	if !ok {
		return domain.Receipt{}, domain.ErrReceiptNotFound
	}
	return r, nil
}

// List returns receipts in the order they were recorded.
func (s *ReceiptStore) List() []domain.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Receipt, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.receipts[id])
	}
	return out
}
