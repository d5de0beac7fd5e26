package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode represents API error codes
type ErrorCode int

const (
	// Authentication errors (1xxx)
	ErrCodeUnauthorized ErrorCode = 1001
	ErrCodeTokenExpired ErrorCode = 1002
	ErrCodeTokenInvalid ErrorCode = 1003
	ErrCodeLoginFailed  ErrorCode = 1004

	// Resource errors (3xxx)
	ErrCodeNotFound      ErrorCode = 3001
	ErrCodeAlreadyExists ErrorCode = 3002
	ErrCodeConflict      ErrorCode = 3003

	// Validation errors (4xxx)
	ErrCodeValidation   ErrorCode = 4001
	ErrCodeInvalidInput ErrorCode = 4002

	// Internal errors (5xxx)
	ErrCodeInternal ErrorCode = 5001
	ErrCodeStore    ErrorCode = 5002
)

// AuthErrorCode is the wire-level code an authentication failure carries,
// mirroring the codes the hosted identity provider used. Known codes map to
// a fixed human-readable message; anything else maps to the generic one.
type AuthErrorCode string

const (
	AuthCodeEmailAlreadyInUse AuthErrorCode = "email-already-in-use"
	AuthCodeInvalidEmail      AuthErrorCode = "invalid-email"
	AuthCodeWeakPassword      AuthErrorCode = "weak-password"
	AuthCodeUserNotFound      AuthErrorCode = "user-not-found"
	AuthCodeWrongPassword     AuthErrorCode = "wrong-password"
	AuthCodeOther             AuthErrorCode = "other"
)

// authMessages is the fixed user-facing message table for provider codes.
var authMessages = map[AuthErrorCode]string{
	AuthCodeEmailAlreadyInUse: "This email address is already in use",
	AuthCodeInvalidEmail:      "Invalid email address",
	AuthCodeWeakPassword:      "Password must be at least 6 characters",
	AuthCodeUserNotFound:      "Incorrect email or password",
	AuthCodeWrongPassword:     "Incorrect email or password",
}

// AuthMessageDefault is returned for any unrecognized provider code.
const AuthMessageDefault = "An error occurred during authentication"

// AuthMessage returns the user-facing message for a provider error code,
// falling back to the generic message for unmapped codes.
func AuthMessage(code AuthErrorCode) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return AuthMessageDefault
}

// ProblemDetails represents RFC 9457 Problem Details for HTTP APIs
type ProblemDetails struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
	// Extension fields
	Code     ErrorCode     `json:"code,omitempty"`
	AuthCode AuthErrorCode `json:"auth_code,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WriteJSON writes the problem details as JSON response
func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// Common error constructors

func NewUnauthorizedError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/unauthorized",
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
		Detail: detail,
		Code:   ErrCodeUnauthorized,
	}
}

// NewAuthRequiredError signals that the action needs an active session.
// It is a prompt to sign in, not a hard failure.
func NewAuthRequiredError() *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/auth-required",
		Title:  "Authentication Required",
		Status: http.StatusUnauthorized,
		Detail: "sign in to continue",
		Code:   ErrCodeUnauthorized,
	}
}

// NewAuthError maps an identity-provider style error code to a response
// carrying the fixed user-facing message for that code.
func NewAuthError(code AuthErrorCode, status int) *ProblemDetails {
	return &ProblemDetails{
		Type:     "https://api.urbanmove.app/errors/auth",
		Title:    "Authentication Failed",
		Status:   status,
		Detail:   AuthMessage(code),
		Code:     ErrCodeLoginFailed,
		AuthCode: code,
	}
}

func NewNotFoundError(resource string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/not-found",
		Title:  "Not Found",
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("%s not found", resource),
		Code:   ErrCodeNotFound,
	}
}

func NewValidationError(errors []FieldError) *ProblemDetails {
	detail := "One or more fields failed validation"
	if len(errors) > 0 {
		detail = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			detail = fmt.Sprintf("%s (and %d more errors)", detail, len(errors)-1)
		}
	}
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/validation",
		Title:  "Validation Error",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
		Code:   ErrCodeValidation,
		Errors: errors,
	}
}

func NewConflictError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/conflict",
		Title:  "Conflict",
		Status: http.StatusConflict,
		Detail: detail,
		Code:   ErrCodeConflict,
	}
}

func NewInternalError(detail string) *ProblemDetails {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/internal",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detail,
		Code:   ErrCodeInternal,
	}
}

// NewStoreError surfaces a persistence failure verbatim. No retry is
// attempted on the caller's behalf.
func NewStoreError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/store",
		Title:  "Store Error",
		Status: http.StatusBadGateway,
		Detail: detail,
		Code:   ErrCodeStore,
	}
}

func NewBadRequestError(detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/bad-request",
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
		Code:   ErrCodeInvalidInput,
	}
}

func NewMethodNotAllowedError(allowed string) *ProblemDetails {
	return &ProblemDetails{
		Type:   "https://api.urbanmove.app/errors/method-not-allowed",
		Title:  "Method Not Allowed",
		Status: http.StatusMethodNotAllowed,
		Detail: fmt.Sprintf("Only %s method is allowed", allowed),
	}
}
