package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Contact   string    `db:"contact" json:"contact"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EmployeeRequest is used for employee creation/update. Contact is only
// checked for presence, not format.
type EmployeeRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Contact string `json:"contact" validate:"notblank"`
	Role    string `json:"role" validate:"notblank"`
}

// Trimmed returns r with surrounding whitespace removed from every field.
func (r EmployeeRequest) Trimmed() EmployeeRequest {
	return EmployeeRequest{
		Name:    strings.TrimSpace(r.Name),
		Contact: strings.TrimSpace(r.Contact),
		Role:    strings.TrimSpace(r.Role),
	}
}
