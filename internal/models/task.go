package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Task is a single to-do item. OwnerID is immutable after creation and a task
// is only ever visible or mutable through its owner.
type Task struct {
	ID uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`

	// OwnerTaskSequence is the per-owner creation counter (first task = 1).
	// Informational only: it is not unique across owners and never used as
	// an identity.
	OwnerTaskSequence int `json:"owner_task_sequence" gorm:"not null"`

	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	Description string    `json:"description" gorm:"not null"`
	DueAt       time.Time `json:"due_at" gorm:"not null"`
	Category    Category  `json:"category" gorm:"not null"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
