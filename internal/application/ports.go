package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/finchpay/payment-gateway/internal/domain"
)

// BankClient is the port for the external bank-authorization service.
//
// A nil error means the bank produced a decision, approved or not. Any
// failure to obtain a decision — transport error, timeout, non-success
// status, undecodable body — is returned as an error wrapping
// ErrBankUnavailable; callers are not told the cause beyond that.
type BankClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResult, error)
}

// AuthorizationRequest carries the minimal fields the bank contract requires.
type AuthorizationRequest struct {
	CardNumber string
	ExpiryDate string // "MM/YYYY"
	Currency   string
	Amount     int64
	CVV        string
}

// AuthorizationResult is the bank's decision.
type AuthorizationResult struct {
	Authorized        bool
	AuthorizationCode string
}

// PaymentStore is the port for persistence. Records are write-once: Put
// inserts under the record's id and silently ignores an id that already
// exists, and no update or delete operation is offered.
type PaymentStore interface {
	Put(ctx context.Context, payment *domain.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}
