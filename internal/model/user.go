package model

import "time"

// User represents a user account
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name,omitempty"`
	Hash        *string   `json:"-"` // Never expose password hash
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Session is the read-only projection of an authenticated user that the
// rest of the app consumes. At most one session exists per access token.
type Session struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
}

// SessionFor builds the session projection for a user.
func SessionFor(u *User) *Session {
	return &Session{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}

// TokenClaims represents extracted JWT claims
type TokenClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}
