package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrUsernameTaken      = errors.New("Username already registered")
	ErrInvalidCredentials = errors.New("Incorrect username or password")
	ErrInvalidSession     = errors.New("Invalid session")
	ErrUserNotFound       = errors.New("user not found")
)

// ===== Wedding Errors =====
var (
	ErrWeddingExists   = errors.New("wedding data already exists for this user")
	ErrWeddingNotFound = errors.New("wedding not found")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrNotWeddingOwner = errors.New("not authorized to access this wedding")
)

// ===== Payment Errors =====
var (
	ErrContributionNotFound = errors.New("payment record not found")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrPaymentProvider      = errors.New("payment provider error")
)
