package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a customer of the business (a "party"). Contact is unique
// across all clients.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Contact   string    `db:"contact" json:"contact"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ClientRequest is used for client creation/update
type ClientRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Contact string `json:"contact" validate:"notblank,contact"`
	Address string `json:"address" validate:"notblank"`
}

// Trimmed returns r with surrounding whitespace removed from every field.
func (r ClientRequest) Trimmed() ClientRequest {
	return ClientRequest{
		Name:    strings.TrimSpace(r.Name),
		Contact: strings.TrimSpace(r.Contact),
		Address: strings.TrimSpace(r.Address),
	}
}
