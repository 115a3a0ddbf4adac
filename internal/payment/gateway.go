// Package payment talks to the external card processor. A booking is only
// created after the processor reports an intent as succeeded.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"movie-booking/pkg/utils"
)

// Intent statuses, as reported by the processor
const (
	StatusSucceeded             = "succeeded"
	StatusProcessing            = "processing"
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusCanceled              = "canceled"
)

var ErrIntentNotFound = errors.New("payment intent not found")

type IntentRequest struct {
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       float64
	Currency     string
}

func (i *Intent) Succeeded() bool {
	return i.Status == StatusSucceeded
}

// Gateway is the processor surface used by the payment service
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*Intent, error)
	GetPaymentIntent(ctx context.Context, intentID string) (*Intent, error)
	Name() string
}

// NewGateway picks the gateway named in config
func NewGateway(config utils.PaymentConfig) (Gateway, error) {
	switch config.Gateway {
	case "", "stripe":
		return NewStripeGateway(config.StripeSecretKey)
	case "mock":
		return NewMockGateway(), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", config.Gateway)
	}
}

// toMinorUnits converts an amount to the smallest currency unit (paise, cents)
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
