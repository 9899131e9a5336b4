// Package model defines the domain types for the wedding-card API:
// users, wedding documents, sessions, RSVPs, guestbook messages, and
// payment contributions, along with the problem-details error types
// returned by the HTTP layer.
package model
