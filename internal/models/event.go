package models

import "github.com/google/uuid"

// EntityKind names a managed entity in change events
type EntityKind string

const (
	EntityClient   EntityKind = "client"
	EntityEmployee EntityKind = "employee"
	EntityProduct  EntityKind = "product"
	EntityExpense  EntityKind = "expense"
)

// ChangeAction is what happened to the record
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent tells listeners that a record changed and should be re-read
type ChangeEvent struct {
	Entity EntityKind   `json:"entity"`
	Action ChangeAction `json:"action"`
	ID     uuid.UUID    `json:"id"`
}
