package rest

import (
	"github.com/finchpay/payment-gateway/internal/domain"
	"github.com/finchpay/payment-gateway/internal/validation"
)

// PaymentRequest is the merchant-facing POST /payments body.
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"` // "MM/YYYY"
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"` // minor units
	CVV        string `json:"cvv"`
}

// PaymentResponse is the record shape returned to merchants. It never
// carries the full card number or the CVV.
type PaymentResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"card_number_last_four"`
	ExpiryMonth        int    `json:"expiry_month"`
	ExpiryYear         int    `json:"expiry_year"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
}

// ValidationErrorResponse lists every violated request rule.
type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// ErrorResponse is the generic failure envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID.String(),
		Status:             string(p.Status),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.AmountMinorUnits,
	}
}
