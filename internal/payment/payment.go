package payment

import "context"

// IntentStatus is the gateway-side state of a payment intent.
type IntentStatus string

// StatusSucceeded is the only status that marks an order as paid.
const StatusSucceeded IntentStatus = "succeeded"

// Intent is the gateway record of an intended charge.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	ReceiptEmail string
}

// CreateIntentParams describes the charge to create.
type CreateIntentParams struct {
	// Amount in minor currency units (cents).
	Amount   int64
	Currency string
	// Metadata is attached for later reconciliation (order id and number).
	Metadata map[string]string
}

// Provider is the payment-gateway client boundary.
type Provider interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
	// RetrieveIntent fetches the current gateway-side status. The intent
	// status is never taken from client input.
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}
