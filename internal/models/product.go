package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an embroidery design held in inventory, identified by its
// design id.
type Product struct {
	ID             uuid.UUID       `db:"design_id" json:"design_id"`
	Description    string          `db:"description" json:"description"`
	EmbroideryType string          `db:"embroidery_type" json:"embroidery_type"`
	Price          decimal.Decimal `db:"price" json:"price"`
	Stock          int             `db:"stock" json:"stock"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// ProductRequest carries the raw form values; Price and Stock are parsed by
// the validation layer.
type ProductRequest struct {
	Description    string `json:"description" validate:"notblank"`
	EmbroideryType string `json:"embroidery_type" validate:"notblank"`
	Price          string `json:"price" validate:"notblank"`
	Stock          string `json:"stock" validate:"notblank"`
}

// Trimmed returns r with surrounding whitespace removed from every field.
func (r ProductRequest) Trimmed() ProductRequest {
	return ProductRequest{
		Description:    strings.TrimSpace(r.Description),
		EmbroideryType: strings.TrimSpace(r.EmbroideryType),
		Price:          strings.TrimSpace(r.Price),
		Stock:          strings.TrimSpace(r.Stock),
	}
}
