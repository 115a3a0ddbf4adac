package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
)

const alphanumericChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomAlphanumeric(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumericChars[rand.IntN(len(alphanumericChars))]
	}
	return string(b)
}

// MockGateway keeps intents in memory. New intents succeed immediately
// unless a different status is forced with SetStatus.
type MockGateway struct {
	intents sync.Map
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*Intent, error) {
	if req == nil {
		return nil, fmt.Errorf("payment intent request is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	// Same shape as Stripe ids so clients cannot tell the difference
	id := "pi_" + randomAlphanumeric(24)
	intent := &Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + randomAlphanumeric(24),
		Status:       StatusSucceeded,
		Amount:       fromMinorUnits(toMinorUnits(req.Amount)),
		Currency:     req.Currency,
	}
	g.intents.Store(id, intent)

	copied := *intent
	return &copied, nil
}

func (g *MockGateway) GetPaymentIntent(ctx context.Context, intentID string) (*Intent, error) {
	v, ok := g.intents.Load(intentID)
	if !ok {
		return nil, ErrIntentNotFound
	}

	copied := *v.(*Intent)
	return &copied, nil
}

// SetStatus overrides the status of a stored intent
func (g *MockGateway) SetStatus(intentID, status string) error {
	v, ok := g.intents.Load(intentID)
	if !ok {
		return ErrIntentNotFound
	}

	updated := *v.(*Intent)
	updated.Status = status
	g.intents.Store(intentID, &updated)
	return nil
}

func (g *MockGateway) Name() string {
	return "mock"
}
