// Package domain encodes the payment record and its terminal statuses.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the gateway's final word on a payment. Every status is
// terminal; a record never changes status after creation.
type PaymentStatus string

const (
	// StatusAuthorized means the bank approved the charge.
	StatusAuthorized PaymentStatus = "Authorized"
	// StatusDeclined means the bank refused the charge.
	StatusDeclined PaymentStatus = "Declined"
	// StatusRejected means the gateway itself did not approve the payment,
	// either because the request was invalid or because no bank decision
	// could be obtained.
	StatusRejected PaymentStatus = "Rejected"
)

// Payment is the persisted outcome of a single authorization attempt.
// It carries only the last four digits of the card number and never the CVV.
type Payment struct {
	ID                 uuid.UUID
	Status             PaymentStatus
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	AmountMinorUnits   int64
	AuthorizationCode  string
	CreatedAt          time.Time
}

// NewPayment builds a record from a validated request. The full card number
// is masked here so no caller can construct a Payment holding a PAN.
func NewPayment(
	id uuid.UUID,
	status PaymentStatus,
	cardNumber string,
	expiryMonth, expiryYear int,
	currency string,
	amountMinorUnits int64,
) (*Payment, error) {
	if len(cardNumber) < 4 {
		return nil, ErrCardNumberTooShort
	}

	return &Payment{
		ID:                 id,
		Status:             status,
		CardNumberLastFour: cardNumber[len(cardNumber)-4:],
		ExpiryMonth:        expiryMonth,
		ExpiryYear:         expiryYear,
		Currency:           currency,
		AmountMinorUnits:   amountMinorUnits,
		CreatedAt:          time.Now(),
	}, nil
}

// NewRejectedPayment builds the record for a request that failed validation.
// The card number may be arbitrarily short here, so masking keeps whatever
// suffix exists.
func NewRejectedPayment(
	id uuid.UUID,
	cardNumber string,
	expiryMonth, expiryYear int,
	currency string,
	amountMinorUnits int64,
) *Payment {
	lastFour := cardNumber
	if len(cardNumber) > 4 {
		lastFour = cardNumber[len(cardNumber)-4:]
	}

	return &Payment{
		ID:                 id,
		Status:             StatusRejected,
		CardNumberLastFour: lastFour,
		ExpiryMonth:        expiryMonth,
		ExpiryYear:         expiryYear,
		Currency:           currency,
		AmountMinorUnits:   amountMinorUnits,
		CreatedAt:          time.Now(),
	}
}
