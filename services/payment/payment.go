package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrMissingPrice is returned when a caller asks for an intent without a
// positive price. The route maps it to a 400 instead of silently dropping
// the response.
var ErrMissingPrice = errors.New("price is required")

// Broker reserves a charge with the payment gateway and hands back the
// client secret the caller needs to confirm it.
type Broker interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// StripeBroker is the production Broker over the Stripe payment-intent API.
type StripeBroker struct {
	api *client.API
}

// NewStripeBroker creates a Broker talking to the live Stripe backend.
func NewStripeBroker(apiKey string) *StripeBroker {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeBroker{api: sc}
}

// NewStripeBrokerWithBackends creates a Broker against custom backends.
// Tests point this at a local HTTP server.
func NewStripeBrokerWithBackends(apiKey string, backends *stripe.Backends) *StripeBroker {
	sc := &client.API{}
	sc.Init(apiKey, backends)
	return &StripeBroker{api: sc}
}

// CreateIntent converts the price to cents (truncating) and reserves a
// card-payable USD charge. No local state is kept besides the returned
// secret.
func (b *StripeBroker) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrMissingPrice
	}

	amount := int64(price * 100)
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := b.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
