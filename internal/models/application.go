package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null" json:"applicant_id"`
	JobID       uuid.UUID `gorm:"type:uuid" json:"job_id"`
	CoverLetter *string   `gorm:"type:text" json:"cover_letter,omitempty"`
	Address     *string   `gorm:"type:text" json:"address,omitempty"`
	ResumeURL   *string   `gorm:"type:text" json:"resume_url,omitempty"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Application) TableName() string {
	return "applications"
}
