package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All expiry checks run against this fixed instant.
var now = time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		CardNumber: "1234567890123451",
		ExpiryDate: "12/2025",
		Currency:   "USD",
		Amount:     100,
		CVV:        "123",
	}
}

func TestCheck_ValidRequest(t *testing.T) {
	res := Check(validRequest(), now)

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors)
	assert.Equal(t, 12, res.ExpiryMonth)
	assert.Equal(t, 2025, res.ExpiryYear)
	assert.Equal(t, "USD", res.Currency)
}

func TestCheck_CardNumber(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		wantErr    string
	}{
		{"missing", "", "Card number is required."},
		{"too short", "123", "Card number must be between 14 and 19 digits and contain only numbers."},
		{"13 digits", "1234567890123", "Card number must be between 14 and 19 digits and contain only numbers."},
		{"20 digits", "12345678901234567890", "Card number must be between 14 and 19 digits and contain only numbers."},
		{"non-digits", "1234abcd90123456", "Card number must be between 14 and 19 digits and contain only numbers."},
		{"14 digits ok", "12345678901234", ""},
		{"19 digits ok", "1234567890123456789", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.CardNumber = tt.cardNumber

			res := Check(req, now)

			if tt.wantErr == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Equal(t, "card_number", res.Errors[0].Field)
			assert.Equal(t, tt.wantErr, res.Errors[0].Message)
		})
	}
}

func TestCheck_ExpiryDate(t *testing.T) {
	tests := []struct {
		name       string
		expiryDate string
		wantErr    string
	}{
		{"missing", "", "Expiry date is required."},
		{"bad separator", "12-2025", "Expiry date must be in MM/YYYY format."},
		{"month 13", "13/2025", "Expiry date must be in MM/YYYY format."},
		{"month 00", "00/2025", "Expiry date must be in MM/YYYY format."},
		{"two-digit year", "12/25", "Expiry date must be in MM/YYYY format."},
		{"past year", "12/2024", "Expiry date must be in the future."},
		{"past month same year", "03/2025", "Expiry date must be in the future."},
		{"current month ok", "04/2025", ""},
		{"single-digit month ok", "4/2025", ""},
		{"future ok", "01/2026", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.ExpiryDate = tt.expiryDate

			res := Check(req, now)

			if tt.wantErr == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Equal(t, "expiry_date", res.Errors[0].Field)
			assert.Equal(t, tt.wantErr, res.Errors[0].Message)
		})
	}
}

// The current month stays valid through its last day: the expiry pair is
// interpreted as end-of-month, not first-of-month.
func TestCheck_ExpiryDate_EndOfMonth(t *testing.T) {
	req := validRequest()
	req.ExpiryDate = "4/2025"

	lastDay := time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC)
	assert.True(t, Check(req, lastDay).Valid())

	firstOfMay := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	res := Check(req, firstOfMay)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "expiry_date", res.Errors[0].Field)
}

func TestCheck_ExpiryDate_ParsedEvenWhenExpired(t *testing.T) {
	req := validRequest()
	req.ExpiryDate = "03/2020"

	res := Check(req, now)

	assert.False(t, res.Valid())
	assert.Equal(t, 3, res.ExpiryMonth)
	assert.Equal(t, 2020, res.ExpiryYear)
}

func TestCheck_Currency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		wantErr  string
	}{
		{"missing", "", "Currency is required."},
		{"too short", "US", "Currency must be 3 characters."},
		{"too long", "USDT", "Currency must be 3 characters."},
		{"not allowed", "JPY", "Currency must be one of: USD, GBP, EUR"},
		{"usd ok", "USD", ""},
		{"gbp ok", "GBP", ""},
		{"eur ok", "EUR", ""},
		{"lowercase ok", "eur", ""},
		{"mixed case ok", "gBp", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Currency = tt.currency

			res := Check(req, now)

			if tt.wantErr == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Equal(t, "currency", res.Errors[0].Field)
			assert.Equal(t, tt.wantErr, res.Errors[0].Message)
		})
	}
}

func TestCheck_Currency_Normalized(t *testing.T) {
	req := validRequest()
	req.Currency = "gbp"

	res := Check(req, now)

	assert.True(t, res.Valid())
	assert.Equal(t, "GBP", res.Currency)
}

func TestCheck_Amount(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -100, true},
		{"one ok", 1, false},
		{"large ok", 1 << 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Amount = tt.amount

			res := Check(req, now)

			if !tt.wantErr {
				assert.True(t, res.Valid())
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Equal(t, "amount", res.Errors[0].Field)
			assert.Equal(t, "Amount must be greater than 0.", res.Errors[0].Message)
		})
	}
}

func TestCheck_CVV(t *testing.T) {
	tests := []struct {
		name    string
		cvv     string
		wantErr string
	}{
		{"missing", "", "CVV is required."},
		{"too short", "12", "CVV must be 3 or 4 digits."},
		{"too long", "12345", "CVV must be 3 or 4 digits."},
		{"non-digits", "12a", "CVV must be 3 or 4 digits."},
		{"three digits ok", "123", ""},
		{"four digits ok", "1234", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.CVV = tt.cvv

			res := Check(req, now)

			if tt.wantErr == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Equal(t, "cvv", res.Errors[0].Field)
			assert.Equal(t, tt.wantErr, res.Errors[0].Message)
		})
	}
}

// Every violated rule is reported, in a stable field order.
func TestCheck_AggregatesAllViolations(t *testing.T) {
	res := Check(Request{
		CardNumber: "123",
		ExpiryDate: "13/2025",
		Currency:   "JPY",
		Amount:     0,
		CVV:        "1",
	}, now)

	require.Len(t, res.Errors, 5)

	fields := make([]string, 0, len(res.Errors))
	for _, fe := range res.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"card_number", "expiry_date", "currency", "amount", "cvv"}, fields)
}
