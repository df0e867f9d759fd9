package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// ExpenseRepository handles expense data access
type ExpenseRepository struct {
	*Repository[models.Expense]
}

func expenseKind(policy validation.NumericPolicy) Kind[models.Expense] {
	return Kind[models.Expense]{
		Name:     "expense",
		Table:    "expenses",
		IDColumn: "id",
		Columns:  []string{"description", "amount", "date"},
		Args: func(e *models.Expense) []any {
			return []any{e.Description, e.Amount, e.Date}
		},
		Meta: func(e *models.Expense) (*uuid.UUID, *time.Time, *time.Time) {
			return &e.ID, &e.CreatedAt, &e.UpdatedAt
		},
		Check: func(e *models.Expense) error {
			if err := validation.RequireNonEmpty(
				validation.F("description", e.Description),
				validation.F("date", e.Date),
			); err != nil {
				return err
			}
			return policy.CheckDecimal("amount", e.Amount)
		},
	}
}

// NewExpenseRepository creates a new expense repository that applies
// policy to amounts.
func NewExpenseRepository(conn *sqlx.DB, policy validation.NumericPolicy) *ExpenseRepository {
	return &ExpenseRepository{Repository: NewRepository(conn, expenseKind(policy))}
}
