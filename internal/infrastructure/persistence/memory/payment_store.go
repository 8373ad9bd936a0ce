// Package memory holds payment records in process memory for their whole
// lifetime. Records are write-once and survive only as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finchpay/payment-gateway/internal/application"
	"github.com/finchpay/payment-gateway/internal/domain"
)

type PaymentStore struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]domain.Payment
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments: make(map[uuid.UUID]domain.Payment),
	}
}

var _ application.PaymentStore = (*PaymentStore)(nil)

// Put inserts the record under its id. An already-present id is left
// untouched; ids are freshly generated per payment so this never happens
// in practice, and insert-once keeps records immutable if it does.
func (s *PaymentStore) Put(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[payment.ID]; exists {
		return nil
	}
	s.payments[payment.ID] = *payment
	return nil
}

// Get returns a copy of the record for id, or ErrPaymentNotFound. Handing
// out copies keeps stored records safe from caller mutation.
func (s *PaymentStore) Get(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, application.ErrPaymentNotFound
	}
	return &payment, nil
}
