package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a row in the shared users table. Pointer fields distinguish
// "never provided" from an empty string.
type Candidate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      *string   `gorm:"type:text" json:"name,omitempty"`
	Email     *string   `gorm:"type:text" json:"email,omitempty"`
	Phone     *string   `gorm:"type:text" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Candidate) TableName() string {
	return "users"
}
