package model

import "time"

// User represents a registered account. Credentials are stored and
// compared as plain text — a deliberate reproduction of the upstream
// system's behavior, NOT a pattern to copy. See the security note in
// DESIGN.md before reusing any of this.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// Session maps an opaque token to a user. Sessions are cached in process
// memory and mirrored to durable storage so they survive restarts; they
// never expire and the durable copy is never deleted.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
