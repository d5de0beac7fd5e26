package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/urbanmove/api/internal/model"
	"github.com/urbanmove/api/pkg/jwt"
)

// RefreshToken is the stored form of a refresh token. Only the SHA-256
// hash is persisted; the token itself exists solely in the client's hands.
type RefreshToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `json:"revoked"`
}

// TokenRepository defines the interface for refresh token storage
type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, hash string) (*RefreshToken, error)
	RotateRefreshToken(ctx context.Context, oldHash string, replacement *RefreshToken) error
	RevokeRefreshToken(ctx context.Context, hash string) error
	RevokeAllUserTokens(ctx context.Context, userID string) error
}

// TokenService issues RS256 access tokens and manages their opaque,
// single-use refresh tokens.
type TokenService struct {
	jwtService      *jwt.Service
	tokenRepo       TokenRepository
	refreshDuration time.Duration
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	JWTService      *jwt.Service
	TokenRepo       TokenRepository
	RefreshDuration time.Duration // Default: 30 days
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	if cfg.RefreshDuration == 0 {
		cfg.RefreshDuration = 30 * 24 * time.Hour
	}
	return &TokenService{
		jwtService:      cfg.JWTService,
		tokenRepo:       cfg.TokenRepo,
		refreshDuration: cfg.RefreshDuration,
	}
}

// TokenPair represents an access token and refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}

// GenerateTokenPair mints a fresh access/refresh pair for the user and
// stores the refresh token's hash.
func (s *TokenService) GenerateTokenPair(ctx context.Context, user *model.User) (*TokenPair, error) {
	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := mintRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.CreateRefreshToken(ctx, s.storedToken(user.ID, refreshToken)); err != nil {
		return nil, err
	}

	return s.tokenPair(accessToken, refreshToken), nil
}

// RefreshTokens rotates a refresh token: the old one is revoked and its
// replacement stored in one atomic write, so each refresh token works at
// most once. Presenting an already-revoked token is treated as theft
// evidence and revokes every token the account holds.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string, user *model.User) (*TokenPair, error) {
	tokenHash := hashToken(refreshToken)

	stored, err := s.tokenRepo.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil || stored == nil {
		return nil, ErrInvalidRefreshToken
	}
	if stored.Revoked {
		_ = s.tokenRepo.RevokeAllUserTokens(ctx, stored.UserID)
		return nil, ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrRefreshTokenExpired
	}

	accessToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	replacement, err := mintRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RotateRefreshToken(ctx, tokenHash, s.storedToken(user.ID, replacement)); err != nil {
		return nil, err
	}

	return s.tokenPair(accessToken, replacement), nil
}

// ValidateAccessToken validates an access token and returns the claims
func (s *TokenService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}

// RevokeRefreshToken revokes a single refresh token
func (s *TokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeRefreshToken(ctx, hashToken(refreshToken))
}

// RevokeAllUserTokens revokes all refresh tokens for a user (logout from all devices)
func (s *TokenService) RevokeAllUserTokens(ctx context.Context, userID string) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}

func (s *TokenService) signAccessToken(user *model.User) (string, error) {
	displayName := ""
	if user.DisplayName != nil {
		displayName = *user.DisplayName
	}
	return s.jwtService.Sign(jwt.Claims{
		Subject:     user.ID,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: displayName,
	})
}

func (s *TokenService) storedToken(userID, refreshToken string) *RefreshToken {
	now := time.Now()
	return &RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: now.Add(s.refreshDuration),
		CreatedAt: now,
	}
}

func (s *TokenService) tokenPair(accessToken, refreshToken string) *TokenPair {
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.jwtService.GetExpiration().Seconds()),
	}
}

// mintRefreshToken draws 32 random bytes, hex-encoded. The token carries
// no structure; the server only ever compares hashes.
func mintRefreshToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// hashToken creates a SHA-256 hash of the token for storage
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
