package services

// ProcessCommand carries the raw caller-supplied payment fields.
type ProcessCommand struct {
	CardNumber string
	ExpiryDate string // "MM/YYYY"
	Currency   string
	Amount     int64 // minor units
	CVV        string
}
