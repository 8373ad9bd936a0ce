// Package rest exposes the merchant-facing HTTP surface.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finchpay/payment-gateway/internal/application"
	"github.com/finchpay/payment-gateway/internal/application/services"
)

type PaymentHandler struct {
	service *services.PaymentService
	logger  *slog.Logger
}

func NewPaymentHandler(service *services.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePayment handles POST /payments.
//
// Authorized and Declined outcomes return 200 with the record. Validation
// failures return 400 with field errors and no record. A bank-unavailable
// rejection also returns 400, but with the persisted Rejected record as
// the body — the two rejection shapes are told apart by payload, not
// status code.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "Request body must be valid JSON",
		})
		return
	}

	payment, err := h.service.Process(r.Context(), services.ProcessCommand{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	})
	if err != nil {
		svcErr, ok := application.IsServiceError(err)
		if !ok {
			h.writeInternalError(w, r, err)
			return
		}

		switch svcErr.Code {
		case application.ErrCodeValidation:
			writeJSON(w, svcErr.HTTPStatus, ValidationErrorResponse{Errors: svcErr.Fields})
		case application.ErrCodeBankUnavailable:
			writeJSON(w, svcErr.HTTPStatus, toPaymentResponse(payment))
		default:
			h.writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// GetPayment handles GET /payments/{id}. A malformed id behaves like an
// unknown one.
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w)
		return
	}

	payment, err := h.service.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			writeNotFound(w)
			return
		}
		h.writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func (h *PaymentHandler) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Code:    application.ErrCodeInternal,
		Message: "An internal error occurred",
	})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Code:    "PAYMENT_NOT_FOUND",
		Message: "No payment exists for the given id",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
