package model

import "time"

// RSVP is a single guest response to a wedding invitation. Entries are
// append-only; there is no duplicate-submission detection.
type RSVP struct {
	ID                  string    `json:"id"`
	WeddingID           string    `json:"wedding_id"`
	GuestName           string    `json:"guest_name"`
	GuestEmail          string    `json:"guest_email"`
	GuestPhone          string    `json:"guest_phone"`
	Attendance          string    `json:"attendance"` // "yes" or "no"
	GuestCount          int       `json:"guest_count"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	SpecialMessage      string    `json:"special_message"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

// Sentinel wedding references that classify a guestbook message as
// belonging to the public landing page rather than a specific wedding.
const GuestbookPublicWeddingID = "public"

// GuestbookMessage is one guestbook entry. Public messages appear on the
// landing page; private ones only on the owning couple's dashboard.
type GuestbookMessage struct {
	ID           string    `json:"id"`
	WeddingID    string    `json:"wedding_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Message      string    `json:"message"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}
