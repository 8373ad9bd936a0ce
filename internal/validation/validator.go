// Package validation checks incoming payment requests before any money
// movement happens. All rules are evaluated independently and every
// violation is reported, so a caller sees the full list of problems at once.
//
// The evaluation time is an explicit argument rather than a global clock
// read, which keeps the expiry rule deterministic under test.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{14,19}$`)
	expiryDatePattern = regexp.MustCompile(`^(0?[1-9]|1[0-2])/\d{4}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)

	allowedCurrencies = map[string]struct{}{
		"USD": {},
		"GBP": {},
		"EUR": {},
	}
)

// Request is the caller-supplied payment input, prior to any checking.
type Request struct {
	CardNumber string
	ExpiryDate string // "MM/YYYY"
	Currency   string
	Amount     int64  // minor units
	CVV        string
}

// FieldError names a single violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result aggregates every violated rule plus the normalized values the
// orchestrator needs downstream. Errors keeps field order stable:
// card_number, expiry_date, currency, amount, cvv.
type Result struct {
	Errors      []FieldError
	ExpiryMonth int
	ExpiryYear  int
	Currency    string // upper-cased
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Check runs all rules against req, using now for the expiry comparison.
func Check(req Request, now time.Time) Result {
	res := Result{
		Currency: strings.ToUpper(req.Currency),
	}

	res.checkCardNumber(req.CardNumber)
	res.checkExpiryDate(req.ExpiryDate, now)
	res.checkCurrency(req.Currency)
	res.checkAmount(req.Amount)
	res.checkCVV(req.CVV)

	return res
}

func (r *Result) fail(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func (r *Result) checkCardNumber(cardNumber string) {
	if cardNumber == "" {
		r.fail("card_number", "Card number is required.")
		return
	}
	if !cardNumberPattern.MatchString(cardNumber) {
		r.fail("card_number", "Card number must be between 14 and 19 digits and contain only numbers.")
	}
}

func (r *Result) checkExpiryDate(expiryDate string, now time.Time) {
	if expiryDate == "" {
		r.fail("expiry_date", "Expiry date is required.")
		return
	}
	if !expiryDatePattern.MatchString(expiryDate) {
		r.fail("expiry_date", "Expiry date must be in MM/YYYY format.")
		return
	}

	parts := strings.SplitN(expiryDate, "/", 2)
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])
	r.ExpiryMonth = month
	r.ExpiryYear = year

	if endOfMonth(year, time.Month(month), now.Location()).Before(now) {
		r.fail("expiry_date", "Expiry date must be in the future.")
	}
}

func (r *Result) checkCurrency(currency string) {
	if currency == "" {
		r.fail("currency", "Currency is required.")
		return
	}
	if len(currency) != 3 {
		r.fail("currency", "Currency must be 3 characters.")
		return
	}
	if _, ok := allowedCurrencies[strings.ToUpper(currency)]; !ok {
		r.fail("currency", "Currency must be one of: USD, GBP, EUR")
	}
}

func (r *Result) checkAmount(amount int64) {
	if amount < 1 {
		r.fail("amount", "Amount must be greater than 0.")
	}
}

func (r *Result) checkCVV(cvv string) {
	if cvv == "" {
		r.fail("cvv", "CVV is required.")
		return
	}
	if !cvvPattern.MatchString(cvv) {
		r.fail("cvv", "CVV must be 3 or 4 digits.")
	}
}

// endOfMonth returns the last instant of the given month: one nanosecond
// before the first day of the following month.
func endOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	firstOfNext := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstOfNext.Add(-time.Nanosecond)
}
