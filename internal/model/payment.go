package model

import "time"

// PaymentStatus is the lifecycle state of a contribution.
//
// The only transitions are pending → completed and pending → failed,
// both driven by the payment-confirmation endpoint. Manual (UPI)
// contributions start and remain completed.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Contribution is a monetary gift toward a wedding's honeymoon fund,
// either processed through the payment provider or recorded manually
// via UPI.
type Contribution struct {
	ID               string        `json:"id"`
	WeddingID        string        `json:"wedding_id"`
	ContributorName  string        `json:"contributor_name"`
	ContributorEmail string        `json:"contributor_email"`
	ContributorPhone string        `json:"contributor_phone"`
	Amount           float64       `json:"amount"`
	Currency         string        `json:"currency"`
	PaymentIntentID  string        `json:"stripe_payment_intent_id"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentMethod    string        `json:"payment_method,omitempty"` // "upi" for manual contributions
	UPIReference     string        `json:"upi_reference,omitempty"`
	Message          string        `json:"message"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        *time.Time    `json:"updated_at,omitempty"`
}
