package models

import (
	"time"

	"github.com/google/uuid"
)

// NegotiationSession records one slot-negotiation cycle for an interview.
// Round counts the back-and-forth exchanges so far.
type NegotiationSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewID uuid.UUID `gorm:"type:uuid;not null;index" json:"interview_id"`
	Round       int       `gorm:"not null;default:1" json:"round"`
	State       string    `gorm:"type:text" json:"state"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (NegotiationSession) TableName() string {
	return "negotiation_sessions"
}
