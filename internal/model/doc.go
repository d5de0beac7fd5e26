// Package model defines domain entities and data structures for the Urban Move API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials
//   - Session: Read-only projection of the authenticated user
//   - Event: User-created mobility event (carpool, group ride, car-free day)
//   - StopRecord: Immutable transit stop shown on the map
//
// # Event Shape
//
// Events are tagged variants: the Category field selects which of the three
// category-specific attribute groups (Carpool, Ride, CarFree) is populated,
// and exactly one must be. DetailsMatchCategory enforces this structurally
// rather than by convention.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go, along with the
// identity-provider error code table: known codes map to fixed user-facing
// messages, anything else falls back to the generic message.
package model
