// Package config manages application configuration for the Urban Move API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT             - HTTP server port (default: 8080)
//	SERVER_ENV              - development, production, or test
//	CORS_ALLOWED_ORIGINS    - comma-separated list of allowed origins
//	DB_HOST / DB_PORT       - SurrealDB host and port
//	DB_NAMESPACE / DB_DATABASE
//	DB_USER / DB_PASSWORD
//	JWT_PRIVATE_KEY_PATH    - RSA private key in PEM format
//	JWT_PUBLIC_KEY_PATH     - RSA public key in PEM format
//	JWT_EXPIRATION_MINS     - access token lifetime in minutes
//	JWT_REFRESH_EXPIRY_DAYS - refresh token lifetime in days
//
// # Default Values
//
// Sensible defaults are provided for development; production deployments
// should set every variable explicitly and call Validate before serving.
package config
