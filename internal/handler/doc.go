// Package handler provides HTTP request handlers for the Urban Move API.
//
// The handler package contains all HTTP endpoint implementations organized by domain.
// Each handler struct encapsulates the dependencies needed to serve requests for a
// specific feature area (authentication, stops, events).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Event and session handlers require authentication via JWT tokens. The auth
// middleware extracts the user ID and makes it available via
// middleware.GetUserID(ctx).
//
// # Example Usage
//
//	handler := NewEventHandler(eventService)
//	mux.Handle("POST /v1/events", authRequired(http.HandlerFunc(handler.Create)))
package handler
