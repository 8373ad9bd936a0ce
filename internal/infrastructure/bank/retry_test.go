package bank

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchpay/payment-gateway/internal/application"
	"github.com/finchpay/payment-gateway/internal/config"
)

type fakeBankClient struct {
	authorizeFn func(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error)
	calls       int
}

func (f *fakeBankClient) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
	f.calls++
	return f.authorizeFn(ctx, req)
}

func retryConfig() config.RetryConfig {
	return config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: 3,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	inner := &fakeBankClient{
		authorizeFn: func(_ context.Context, _ application.AuthorizationRequest) (*application.AuthorizationResult, error) {
			return &application.AuthorizationResult{Authorized: true, AuthorizationCode: "auth-1"}, nil
		},
	}
	client := NewRetryClient(inner, retryConfig())

	result, err := client.Authorize(context.Background(), application.AuthorizationRequest{})

	require.NoError(t, err)
	assert.True(t, result.Authorized)
	assert.Equal(t, 1, inner.calls)
}

func TestRetry_RecoversAfterTransientFailures(t *testing.T) {
	inner := &fakeBankClient{}
	inner.authorizeFn = func(_ context.Context, _ application.AuthorizationRequest) (*application.AuthorizationResult, error) {
		if inner.calls < 3 {
			return nil, fmt.Errorf("%w: connection reset", application.ErrBankUnavailable)
		}
		return &application.AuthorizationResult{Authorized: false}, nil
	}
	client := NewRetryClient(inner, retryConfig())

	result, err := client.Authorize(context.Background(), application.AuthorizationRequest{})

	require.NoError(t, err)
	assert.False(t, result.Authorized)
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_GivesUpAfterMaxRetries(t *testing.T) {
	inner := &fakeBankClient{
		authorizeFn: func(_ context.Context, _ application.AuthorizationRequest) (*application.AuthorizationResult, error) {
			return nil, fmt.Errorf("%w: still down", application.ErrBankUnavailable)
		},
	}
	client := NewRetryClient(inner, retryConfig())

	result, err := client.Authorize(context.Background(), application.AuthorizationRequest{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, application.ErrBankUnavailable)
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_ContextCanceledStopsRetrying(t *testing.T) {
	inner := &fakeBankClient{
		authorizeFn: func(_ context.Context, _ application.AuthorizationRequest) (*application.AuthorizationResult, error) {
			return nil, fmt.Errorf("%w: down", application.ErrBankUnavailable)
		},
	}
	client := NewRetryClient(inner, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := client.Authorize(ctx, application.AuthorizationRequest{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, application.ErrBankUnavailable)
	assert.Equal(t, 0, inner.calls)
}
