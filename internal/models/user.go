package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// User is an account that owns tasks. Email doubles as the login credential
// and is unique at the database level. PasswordHash holds a bcrypt hash; the
// plaintext password is never persisted.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:OwnerID"`
}
