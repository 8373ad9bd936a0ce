package bank

// Wire shapes for the bank-authorization service.

type authorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type authorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}
