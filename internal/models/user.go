package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest is the payload of the registration form
type RegisterRequest struct {
	Username        string `json:"username" validate:"notblank"`
	Password        string `json:"password" validate:"notblank"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the payload of the login form
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is used by a signed-in user to rotate their password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"notblank"`
	NewPassword     string `json:"new_password" validate:"notblank"`
}
