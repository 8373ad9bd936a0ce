package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/finchpay/payment-gateway/internal/validation"
)

var (
	// ErrBankUnavailable marks any failure to obtain a bank decision.
	// Adapters wrap it; callers test for it with errors.Is.
	ErrBankUnavailable = errors.New("bank authorization service unavailable")

	// ErrPaymentNotFound is returned by stores when no record exists for
	// the requested id. Absence is not a failure; it is reported as-is.
	ErrPaymentNotFound = errors.New("payment not found")
)

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBankUnavailable = "BANK_UNAVAILABLE"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// ServiceError is the application-level error envelope handed to the
// boundary layer, carrying the HTTP status the REST layer should use.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []validation.FieldError
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewValidationError reports the full set of violated request rules.
func NewValidationError(fields []validation.FieldError) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    "Payment request failed validation",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// NewBankUnavailableError signals that the payment was rejected because no
// bank decision could be obtained. The rejected record still exists.
func NewBankUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeBankUnavailable,
		Message:    "Payment rejected: bank authorization unavailable",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsServiceError unwraps err into a ServiceError if one is present.
func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
