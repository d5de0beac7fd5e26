package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/urbanmove/api/internal/database"
	"github.com/urbanmove/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new account and writes the server-assigned ID and
// timestamps back onto user. A taken email maps to database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			email: $email,
			display_name: IF $display_name IS NOT NULL THEN $display_name ELSE NONE END,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	result, err := r.db.Query(ctx, query, map[string]interface{}{
		"email":        user.Email,
		"display_name": ptrToNone(user.DisplayName),
		"hash":         ptrToNone(user.Hash),
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	user.ID = created.ID
	user.CreatedOn = created.CreatedOn
	user.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID looks up an account by record ID. A missing account returns
// (nil, nil) so callers can treat absence as a business condition.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`,
		map[string]interface{}{"id": id})
	return r.parseLookup(result, err)
}

// GetByEmail looks up an account by email. A missing account returns
// (nil, nil), same as GetByID.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM user WHERE email = $email LIMIT 1`,
		map[string]interface{}{"email": email})
	return r.parseLookup(result, err)
}

func (r *UserRepository) parseLookup(result interface{}, err error) (*model.User, error) {
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUserRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// parseUserRecord maps a raw query result onto a User. Field extraction is
// explicit rather than decoded through JSON tags: the hash carries json:"-"
// and would be dropped by a tag-driven decode.
func parseUserRecord(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := unwrapRecord(result)
	if !ok {
		switch result.(type) {
		case map[string]interface{}, []interface{}:
			// Recognized shape that held no record.
			return nil, database.ErrNotFound
		default:
			return nil, errors.New("unexpected result format")
		}
	}

	user := &model.User{
		Email:       getString(data, "email"),
		DisplayName: getStringPtr(data, "display_name"),
		Hash:        getStringPtr(data, "hash"),
	}
	if id, ok := data["id"]; ok {
		user.ID = convertSurrealID(id)
	}
	user.CreatedOn, _ = getTimeChecked(data, "created_on")
	user.UpdatedOn, _ = getTimeChecked(data, "updated_on")
	return user, nil
}

// ptrToNone passes an optional string through to a query variable, where
// the IS NOT NULL guard turns absence into NONE.
func ptrToNone(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
