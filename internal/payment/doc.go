// Package payment wraps the card payment provider behind a small
// interface so the service layer and tests never touch the Stripe SDK
// directly.
package payment
