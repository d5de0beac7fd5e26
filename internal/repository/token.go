package repository

import (
	"context"
	"errors"
	"time"

	"github.com/urbanmove/api/internal/database"
	"github.com/urbanmove/api/internal/service"
)

// TokenRepository handles refresh token data access
type TokenRepository struct {
	db database.Database
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db database.Database) *TokenRepository {
	return &TokenRepository{db: db}
}

// insertTokenQuery stores one refresh token row. The same statement serves
// plain creation and the insert half of a rotation.
const insertTokenQuery = `
	CREATE refresh_token CONTENT {
		user: type::record($user),
		token_hash: $token_hash,
		expires_at: <datetime>$expires_at,
		created_at: time::now(),
		revoked: false
	}`

func insertTokenVars(token *service.RefreshToken) map[string]interface{} {
	return map[string]interface{}{
		"user":       token.UserID, // already in "user:xxx" form
		"token_hash": token.TokenHash,
		"expires_at": token.ExpiresAt.Format(time.RFC3339),
	}
}

// CreateRefreshToken stores a new refresh token and writes the assigned ID
// and creation time back onto it.
func (r *TokenRepository) CreateRefreshToken(ctx context.Context, token *service.RefreshToken) error {
	result, err := r.db.Query(ctx, insertTokenQuery, insertTokenVars(token))
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	token.ID = created.ID
	token.CreatedAt = created.CreatedOn
	return nil
}

// GetRefreshTokenByHash retrieves a refresh token by its hash. A missing
// token returns (nil, nil).
func (r *TokenRepository) GetRefreshTokenByHash(ctx context.Context, hash string) (*service.RefreshToken, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM refresh_token WHERE token_hash = $hash LIMIT 1`,
		map[string]interface{}{"hash": hash})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	token, err := parseRefreshToken(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

// RotateRefreshToken atomically revokes the old token and stores its
// replacement. Either both writes land or neither does, so a crash between
// them cannot leave the user without a valid refresh token.
func (r *TokenRepository) RotateRefreshToken(ctx context.Context, oldHash string, replacement *service.RefreshToken) error {
	return WithTransaction(ctx, r.db, func(tx database.Transaction) error {
		if err := tx.Execute(ctx, `UPDATE refresh_token SET revoked = true WHERE token_hash = $old_hash`,
			map[string]interface{}{"old_hash": oldHash}); err != nil {
			return err
		}
		return tx.Execute(ctx, insertTokenQuery, insertTokenVars(replacement))
	})
}

// RevokeRefreshToken marks a refresh token as revoked and purges any of the
// owner's tokens that have already expired, in a single atomic batch.
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, hash string) error {
	return database.NewAtomicBatch().
		Add(`UPDATE refresh_token SET revoked = true WHERE token_hash = $hash`,
			map[string]interface{}{"hash": hash}).
		Add(`DELETE refresh_token WHERE expires_at < time::now()`, nil).
		Execute(ctx, r.db)
}

// RevokeAllUserTokens revokes all refresh tokens for a user
func (r *TokenRepository) RevokeAllUserTokens(ctx context.Context, userID string) error {
	return r.db.Execute(ctx, `UPDATE refresh_token SET revoked = true WHERE user = type::record($user)`,
		map[string]interface{}{"user": userID})
}

func parseRefreshToken(result interface{}) (*service.RefreshToken, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := unwrapRecord(result)
	if !ok {
		switch result.(type) {
		case map[string]interface{}, []interface{}:
			return nil, database.ErrNotFound
		default:
			return nil, errors.New("unexpected result format")
		}
	}

	token := &service.RefreshToken{
		ID:        convertSurrealID(data["id"]),
		UserID:    convertSurrealID(data["user"]),
		TokenHash: getString(data, "token_hash"),
	}
	token.ExpiresAt, _ = getTimeChecked(data, "expires_at")
	token.CreatedAt, _ = getTimeChecked(data, "created_at")
	if revoked, ok := data["revoked"].(bool); ok {
		token.Revoked = revoked
	}
	return token, nil
}
