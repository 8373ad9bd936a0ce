package bank

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/finchpay/payment-gateway/internal/application"
	"github.com/finchpay/payment-gateway/internal/config"
)

// RetryClient decorates a BankClient with bounded retries. Only
// unavailable-class failures are retried; a decoded decision, approved or
// declined, is never re-sent to the bank.
type RetryClient struct {
	inner      application.BankClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner application.BankClient, cfg config.RetryConfig) *RetryClient {
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: cfg.MaxRetries,
	}
}

var _ application.BankClient = (*RetryClient)(nil)

func (r *RetryClient) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", application.ErrBankUnavailable, ctx.Err())
		default:
		}

		result, err := r.inner.Authorize(ctx, req)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !errors.Is(err, application.ErrBankUnavailable) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			time.Sleep(r.backoff(attempt))
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// backoff grows exponentially with a little jitter to avoid thundering herds.
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	jitter := time.Duration(rand.Intn(100)) * time.Millisecond
	return base + jitter
}
