package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// ClientRepository handles client data access. Contact is unique across
// clients and must match the contact pattern even when the repository is
// called directly.
type ClientRepository struct {
	*Repository[models.Client]
}

func clientKind() Kind[models.Client] {
	return Kind[models.Client]{
		Name:     "client",
		Table:    "clients",
		IDColumn: "id",
		Columns:  []string{"name", "contact", "address"},
		Args: func(c *models.Client) []any {
			return []any{c.Name, c.Contact, c.Address}
		},
		Meta: func(c *models.Client) (*uuid.UUID, *time.Time, *time.Time) {
			return &c.ID, &c.CreatedAt, &c.UpdatedAt
		},
		Unique: &UniqueKey[models.Client]{
			Column: "contact",
			Value:  func(c *models.Client) string { return c.Contact },
			Err:    apperror.NewFieldError(apperror.ErrDuplicateContact, "contact"),
		},
		SearchColumns: []string{"name", "contact"},
		Check: func(c *models.Client) error {
			if err := validation.RequireNonEmpty(
				validation.F("name", c.Name),
				validation.F("contact", c.Contact),
				validation.F("address", c.Address),
			); err != nil {
				return err
			}
			if !validation.ValidateContact(c.Contact) {
				return apperror.NewFieldError(apperror.ErrInvalidFormat, "contact")
			}
			return nil
		},
	}
}

// NewClientRepository creates a new client repository
func NewClientRepository(conn *sqlx.DB) *ClientRepository {
	return &ClientRepository{Repository: NewRepository(conn, clientKind())}
}

// Search returns clients whose name or contact contains query, ignoring
// case. An empty query returns all clients.
func (r *ClientRepository) Search(ctx context.Context, query string) ([]models.Client, error) {
	return r.search(ctx, query)
}
