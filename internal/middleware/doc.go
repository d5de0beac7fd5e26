// Package middleware provides HTTP middleware for the Urban Move API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT token validation and user extraction
//   - RequestID: Unique request identifier propagation
//   - Logger: Structured request logging
//   - Recovery: Panic recovery with problem-details output
//   - CORS: Cross-origin resource sharing
//   - Compress: gzip response compression
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	mux.Handle("GET /v1/events", middleware.Chain(handler, middleware.Auth(authService)))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetClaims(ctx): Returns full JWT claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
