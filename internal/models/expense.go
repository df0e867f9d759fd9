package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Date        string          `db:"date" json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ExpenseRequest carries the raw form values; Amount is parsed by the
// validation layer.
type ExpenseRequest struct {
	Description string `json:"description" validate:"notblank"`
	Amount      string `json:"amount" validate:"notblank"`
	Date        string `json:"date" validate:"notblank"`
}

// Trimmed returns r with surrounding whitespace removed from every field.
func (r ExpenseRequest) Trimmed() ExpenseRequest {
	return ExpenseRequest{
		Description: strings.TrimSpace(r.Description),
		Amount:      strings.TrimSpace(r.Amount),
		Date:        strings.TrimSpace(r.Date),
	}
}
