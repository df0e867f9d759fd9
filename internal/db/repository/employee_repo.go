package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// EmployeeRepository handles employee data access
type EmployeeRepository struct {
	*Repository[models.Employee]
}

func employeeKind() Kind[models.Employee] {
	return Kind[models.Employee]{
		Name:     "employee",
		Table:    "employees",
		IDColumn: "id",
		Columns:  []string{"name", "contact", "role"},
		Args: func(e *models.Employee) []any {
			return []any{e.Name, e.Contact, e.Role}
		},
		Meta: func(e *models.Employee) (*uuid.UUID, *time.Time, *time.Time) {
			return &e.ID, &e.CreatedAt, &e.UpdatedAt
		},
		Check: func(e *models.Employee) error {
			return validation.RequireNonEmpty(
				validation.F("name", e.Name),
				validation.F("contact", e.Contact),
				validation.F("role", e.Role),
			)
		},
	}
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(conn *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{Repository: NewRepository(conn, employeeKind())}
}
