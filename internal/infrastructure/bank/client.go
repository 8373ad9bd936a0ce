// Package bank adapts the external bank-authorization HTTP service to the
// application.BankClient port.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/finchpay/payment-gateway/internal/application"
	"github.com/finchpay/payment-gateway/internal/config"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.BankConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

var _ application.BankClient = (*Client)(nil)

// Authorize posts the payment to the bank and classifies the outcome.
// Only a decodable success response yields a decision; every other result
// collapses into ErrBankUnavailable regardless of cause.
func (c *Client) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
	body, err := json.Marshal(authorizationRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshalling request: %v", application.ErrBankUnavailable, err)
	}

	url := c.baseURL + "/payments"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", application.ErrBankUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: sending request: %v", application.ErrBankUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: bank returned status %d", application.ErrBankUnavailable, resp.StatusCode)
	}

	var decoded authorizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", application.ErrBankUnavailable, err)
	}

	return &application.AuthorizationResult{
		Authorized:        decoded.Authorized,
		AuthorizationCode: decoded.AuthorizationCode,
	}, nil
}
