package handler

import (
	"errors"
	"net/http"

	"github.com/urbanmove/api/internal/database"
	"github.com/urbanmove/api/internal/model"
	"github.com/urbanmove/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
//
// Authentication failures carry the provider-style auth code and its fixed
// user-facing message; unmatched errors fall through to a generic 500.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Auth gateway errors (provider code + fixed message) =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewAuthError(model.AuthCodeEmailAlreadyInUse, http.StatusConflict)
	case errors.Is(err, service.ErrInvalidEmail):
		return model.NewAuthError(model.AuthCodeInvalidEmail, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort):
		return model.NewAuthError(model.AuthCodeWeakPassword, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewAuthError(model.AuthCodeUserNotFound, http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewAuthError(model.AuthCodeWrongPassword, http.StatusUnauthorized)
	case errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})

	// ===== Token errors → 401 =====
	case errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrRefreshTokenExpired),
		errors.Is(err, service.ErrRefreshTokenRevoked):
		return model.NewUnauthorizedError("invalid or expired refresh token")

	// ===== Missing session → 401 prompt =====
	case errors.Is(err, service.ErrAuthRequired):
		return model.NewAuthRequiredError()

	// ===== Event validation errors → 422 =====
	case errors.Is(err, service.ErrInvalidEventCategory):
		return model.NewValidationError([]model.FieldError{{Field: "category", Message: err.Error()}})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: err.Error()}})
	case errors.Is(err, service.ErrDescriptionTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "description", Message: err.Error()}})
	case errors.Is(err, service.ErrStartTimeRequired),
		errors.Is(err, service.ErrInvalidStartTime):
		return model.NewValidationError([]model.FieldError{{Field: "start_time", Message: err.Error()}})
	case errors.Is(err, service.ErrMeetingPointRequired):
		return model.NewValidationError([]model.FieldError{{Field: "meeting_point", Message: err.Error()}})
	case errors.Is(err, service.ErrEventDetailsMismatch):
		return model.NewValidationError([]model.FieldError{{Field: "details", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidSeats),
		errors.Is(err, service.ErrCarModelRequired):
		return model.NewValidationError([]model.FieldError{{Field: "carpool", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidDifficulty),
		errors.Is(err, service.ErrInvalidDistance),
		errors.Is(err, service.ErrInvalidPace):
		return model.NewValidationError([]model.FieldError{{Field: "ride", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidAltTransport):
		return model.NewValidationError([]model.FieldError{{Field: "car_free", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidMaxParticipants):
		return model.NewValidationError([]model.FieldError{{Field: "max_participants", Message: err.Error()}})

	// ===== Store errors =====
	case errors.Is(err, database.ErrNotFound):
		return model.NewNotFoundError("record")
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError(err.Error())
	case errors.Is(err, database.ErrConnection),
		errors.Is(err, database.ErrQuery):
		// Surfaced verbatim, never retried on the caller's behalf
		return model.NewStoreError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
