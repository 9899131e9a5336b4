package payment

import "context"

// StatusSucceeded is the provider-side status of a captured intent.
const StatusSucceeded = "succeeded"

// Intent is the provider-neutral view of a payment intent.
type Intent struct {
	ID             string
	ClientSecret   string
	Status         string
	AmountReceived int64
}

// Provider creates and retrieves payment intents.
type Provider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}
