package handler

import (
	"errors"
	"fmt"

	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidSession):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotWeddingOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrWeddingNotFound):
		return model.NewNotFoundError("wedding")
	case errors.Is(err, service.ErrContributionNotFound):
		return model.NewNotFoundError("payment contribution")

	// ===== Client Errors → 400 =====
	// Duplicates deliberately map to 400 rather than 409; clients key
	// off the message text.
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrWeddingExists):
		return model.NewBadRequestError(err.Error())
	case errors.Is(err, service.ErrInvalidTheme):
		return model.NewBadRequestError(fmt.Sprintf("Invalid theme. Must be one of: %s, %s, %s",
			model.ThemeClassic, model.ThemeModern, model.ThemeBoho))
	case errors.Is(err, service.ErrInvalidAmount):
		return model.NewValidationError([]model.FieldError{{Field: "amount", Message: err.Error()}})
	case errors.Is(err, service.ErrPaymentProvider):
		return model.NewUpstreamError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("An unexpected error occurred")
	}
}
