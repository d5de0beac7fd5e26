package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/urbanmove/api/internal/model"
)

const (
	bcryptCost = 12

	// The 6-character floor matches the weak-password threshold the mobile
	// and web clients already enforce.
	minPasswordLength = 6
	maxPasswordLength = 128
)

// UserRepository is the account storage the auth service works against.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService implements account registration, login, and session lookup.
// Token issuance is delegated to the token service.
type AuthService struct {
	userRepo     UserRepository
	tokenService *TokenService
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo     UserRepository
	TokenService *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:     cfg.UserRepo,
		tokenService: cfg.TokenService,
	}
}

// RegisterRequest carries the sign-up form fields.
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
}

// RegisterResult is a freshly created account with its first token pair.
type RegisterResult struct {
	User      *model.User
	TokenPair *TokenPair
}

// Register creates an account. Emails are normalized to lower case before
// the uniqueness check so the same address cannot register twice with
// different casing.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := normalizeEmail(req.Email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:       email,
		Hash:        optional(string(hash)),
		DisplayName: optional(strings.TrimSpace(req.DisplayName)),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: user, TokenPair: pair}, nil
}

// LoginRequest carries the sign-in form fields.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult is an authenticated account with a fresh token pair.
type LoginResult struct {
	User      *model.User
	TokenPair *TokenPair
}

// Login authenticates by email and password. An unknown email and a wrong
// password yield distinct errors; the handler layer collapses them into one
// user-facing message so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Accounts without a hash cannot sign in with a password.
	if user.Hash == nil || *user.Hash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.Hash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, TokenPair: pair}, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetSession returns the session projection for an authenticated user
func (s *AuthService) GetSession(ctx context.Context, userID string) (*model.Session, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.SessionFor(user), nil
}

// RefreshTokens resolves the account behind a refresh token and rotates the
// pair. Validation and rotation live in the token service.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := s.tokenService.tokenRepo.GetRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil || stored == nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.tokenService.RefreshTokens(ctx, refreshToken, user)
}

// Logout revokes refresh tokens for the user. When a refresh token is
// supplied only that token is revoked; otherwise every token the user holds
// is revoked.
func (s *AuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken != "" {
		return s.tokenService.RevokeRefreshToken(ctx, refreshToken)
	}
	return s.tokenService.RevokeAllUserTokens(ctx, userID)
}

// ValidateAccessToken validates an access token and returns the claims
func (s *AuthService) ValidateAccessToken(token string) (*model.TokenClaims, error) {
	claims, err := s.tokenService.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &model.TokenClaims{
		UserID:      claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail applies the same shallow shape check the clients do: one @
// with a non-empty local part, and a dot inside the domain. Anything deeper
// is left to the verification mail.
func isValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot >= 1 && dot < len(domain)-1
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len(password) < minPasswordLength:
		return ErrPasswordTooShort
	case len(password) > maxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

// optional maps the empty string to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
