package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// ProductRepository handles inventory data access
type ProductRepository struct {
	*Repository[models.Product]
}

func productKind(policy validation.NumericPolicy) Kind[models.Product] {
	return Kind[models.Product]{
		Name:     "product",
		Table:    "products",
		IDColumn: "design_id",
		Columns:  []string{"description", "embroidery_type", "price", "stock"},
		Args: func(p *models.Product) []any {
			return []any{p.Description, p.EmbroideryType, p.Price, p.Stock}
		},
		Meta: func(p *models.Product) (*uuid.UUID, *time.Time, *time.Time) {
			return &p.ID, &p.CreatedAt, &p.UpdatedAt
		},
		Check: func(p *models.Product) error {
			if err := validation.RequireNonEmpty(
				validation.F("description", p.Description),
				validation.F("embroidery_type", p.EmbroideryType),
			); err != nil {
				return err
			}
			if err := policy.CheckDecimal("price", p.Price); err != nil {
				return err
			}
			return policy.CheckInt("stock", p.Stock)
		},
	}
}

// NewProductRepository creates a new product repository that applies
// policy to price and stock.
func NewProductRepository(conn *sqlx.DB, policy validation.NumericPolicy) *ProductRepository {
	return &ProductRepository{Repository: NewRepository(conn, productKind(policy))}
}
