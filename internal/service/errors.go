package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Token Errors =====
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)

// ===== Event Errors =====
var (
	ErrAuthRequired           = errors.New("authentication required")
	ErrInvalidEventCategory   = errors.New("invalid event category")
	ErrTitleRequired          = errors.New("title is required")
	ErrTitleTooLong           = errors.New("title exceeds maximum length")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrStartTimeRequired      = errors.New("start time is required")
	ErrInvalidStartTime       = errors.New("invalid start time format")
	ErrMeetingPointRequired   = errors.New("meeting point is required")
	ErrEventDetailsMismatch   = errors.New("event details do not match category")
	ErrInvalidSeats           = errors.New("seats available must be at least 1")
	ErrCarModelRequired       = errors.New("car model is required")
	ErrInvalidDifficulty      = errors.New("invalid ride difficulty")
	ErrInvalidDistance        = errors.New("ride distance must be positive")
	ErrInvalidPace            = errors.New("invalid ride pace")
	ErrInvalidAltTransport    = errors.New("invalid alternative transport mode")
	ErrInvalidMaxParticipants = errors.New("max participants must be at least 2")
)
