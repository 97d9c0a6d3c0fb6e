package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// requestTimeout bounds every gateway call so a checkout request can not
// hang on a slow Stripe backend.
const requestTimeout = 10 * time.Second

// paymentMethodTypes mirrors the methods offered by the storefront.
var paymentMethodTypes = []string{"card", "sepa_debit", "sofort", "ideal"}

// StripeProvider implements Provider against the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a Stripe client with a bounded HTTP timeout.
func NewStripeProvider(secretKey string) (*StripeProvider, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: requestTimeout},
	})
	api := client.New(secretKey, &stripe.Backends{API: backend})

	return &StripeProvider{api: api}, nil
}

// CreateIntent creates a gateway payment intent for the exact amount.
func (p *StripeProvider) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	piParams := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:             stripe.Int64(params.Amount),
		Currency:           stripe.String(params.Currency),
		PaymentMethodTypes: stripe.StringSlice(paymentMethodTypes),
	}
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(piParams)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return toIntent(pi), nil
}

// RetrieveIntent fetches the current intent state from the gateway.
func (p *StripeProvider) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	pi, err := p.api.PaymentIntents.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent %s: %w", id, err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       IntentStatus(pi.Status),
		ReceiptEmail: pi.ReceiptEmail,
	}
}
