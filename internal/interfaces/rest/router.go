package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the payment endpoints.
func NewRouter(h *PaymentHandler) http.Handler {
	r := chi.NewRouter()

	r.Post("/payments", h.CreatePayment)
	r.Get("/payments/{id}", h.GetPayment)

	return r
}
