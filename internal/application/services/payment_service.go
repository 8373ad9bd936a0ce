package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finchpay/payment-gateway/internal/application"
	"github.com/finchpay/payment-gateway/internal/domain"
	"github.com/finchpay/payment-gateway/internal/validation"
)

// PaymentService orchestrates a payment: validate, authorize with the bank,
// resolve the final status, persist the masked record.
type PaymentService struct {
	store  application.PaymentStore
	bank   application.BankClient
	logger *slog.Logger
	now    func() time.Time
}

func NewPaymentService(
	store application.PaymentStore,
	bank application.BankClient,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		store:  store,
		bank:   bank,
		logger: logger,
		now:    time.Now,
	}
}

// Process runs a payment through validation, bank authorization, and
// storage. It returns the resulting record and, for the two rejection
// paths, a ServiceError the boundary layer turns into a client-error
// response:
//
//   - validation failure: a Rejected record is returned but NOT persisted,
//     together with a validation error listing every violated rule; the
//     bank is never contacted.
//   - bank unavailable: a Rejected record is persisted and returned,
//     together with a bank-unavailable error.
//
// Authorized and Declined outcomes return the persisted record and a nil
// error. Exactly one store write happens on every path that reached the
// bank; zero writes happen for invalid requests.
func (s *PaymentService) Process(ctx context.Context, cmd ProcessCommand) (*domain.Payment, error) {
	res := validation.Check(validation.Request{
		CardNumber: cmd.CardNumber,
		ExpiryDate: cmd.ExpiryDate,
		Currency:   cmd.Currency,
		Amount:     cmd.Amount,
		CVV:        cmd.CVV,
	}, s.now())

	if !res.Valid() {
		payment := domain.NewRejectedPayment(
			uuid.New(),
			cmd.CardNumber,
			res.ExpiryMonth,
			res.ExpiryYear,
			res.Currency,
			cmd.Amount,
		)
		s.logger.Info("payment rejected",
			"payment_id", payment.ID,
			"reason", "validation",
			"violations", len(res.Errors),
		)
		return payment, application.NewValidationError(res.Errors)
	}

	status := domain.StatusRejected
	authorizationCode := ""
	var procErr error

	result, err := s.bank.Authorize(ctx, application.AuthorizationRequest{
		CardNumber: cmd.CardNumber,
		ExpiryDate: cmd.ExpiryDate,
		Currency:   res.Currency,
		Amount:     cmd.Amount,
		CVV:        cmd.CVV,
	})
	switch {
	case err != nil:
		procErr = application.NewBankUnavailableError(err)
	case result.Authorized:
		status = domain.StatusAuthorized
		authorizationCode = result.AuthorizationCode
	default:
		status = domain.StatusDeclined
	}

	payment, err := domain.NewPayment(
		uuid.New(),
		status,
		cmd.CardNumber,
		res.ExpiryMonth,
		res.ExpiryYear,
		res.Currency,
		cmd.Amount,
	)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	payment.AuthorizationCode = authorizationCode

	if err := s.store.Put(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment processed",
		"payment_id", payment.ID,
		"status", payment.Status,
		"card_last_four", payment.CardNumberLastFour,
		"currency", payment.Currency,
		"amount", payment.AmountMinorUnits,
	)

	return payment, procErr
}

// Lookup returns the stored record for id, or ErrPaymentNotFound.
func (s *PaymentService) Lookup(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.store.Get(ctx, id)
}
