package domain

import "errors"

var (
	// ErrCardNumberTooShort guards the last-four mask; a validated card
	// number is always at least 14 digits, so hitting this is a defect.
	ErrCardNumberTooShort = errors.New("card number has fewer than 4 digits")
)
