package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/db"
	"github.com/yogi-fashion/embroidery-service/internal/models"
)

// UserRepository handles user data access
type UserRepository struct {
	*Repository[models.User]

	byUsernameSQL string
	passwordSQL   string
}

func userKind() Kind[models.User] {
	return Kind[models.User]{
		Name:     "user",
		Table:    "users",
		IDColumn: "id",
		Columns:  []string{"username", "password_hash"},
		Args: func(u *models.User) []any {
			return []any{u.Username, u.PasswordHash}
		},
		Meta: func(u *models.User) (*uuid.UUID, *time.Time, *time.Time) {
			return &u.ID, &u.CreatedAt, &u.UpdatedAt
		},
		Unique: &UniqueKey[models.User]{
			Column: "username",
			Value:  func(u *models.User) string { return u.Username },
			Err:    apperror.ErrDuplicateUsername,
		},
		Check: func(u *models.User) error {
			if u.Username == "" || u.PasswordHash == "" {
				return apperror.NewFieldError(apperror.ErrMissingField, "username", "password")
			}
			return nil
		},
	}
}

// NewUserRepository creates a new user repository
func NewUserRepository(conn *sqlx.DB) *UserRepository {
	return &UserRepository{
		Repository: NewRepository(conn, userKind()),
		byUsernameSQL: conn.Rebind(`
		SELECT id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = ?
	`),
		passwordSQL: conn.Rebind(`
		UPDATE users
		SET password_hash = ?, updated_at = ?
		WHERE id = ?
	`),
	}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, r.byUsernameSQL, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("user %q: %w", username, apperror.ErrNotFound)
		}
		return nil, apperror.Storage("get user by username", err)
	}

	return &user, nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, r.passwordSQL, passwordHash, time.Now().UTC(), id)
	if err != nil {
		return apperror.Storage("update user password", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage("get rows affected", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
	}

	return nil
}
