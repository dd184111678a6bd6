package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	StatusInvitationSent InterviewStatus = "invitation_sent"
	StatusSlotPending    InterviewStatus = "slot_pending"
	StatusConfirmed      InterviewStatus = "confirmed"
	StatusCompleted      InterviewStatus = "completed"
	StatusNoShow         InterviewStatus = "no_show"
	StatusCancelled      InterviewStatus = "cancelled"
)

// TerminalStatuses are the states a finished interview can end in. Only
// these count toward a candidate's reliability history.
var TerminalStatuses = []InterviewStatus{StatusCompleted, StatusNoShow, StatusCancelled}

type Interview struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID       `gorm:"type:uuid;not null" json:"application_id"`
	JobID         uuid.UUID       `gorm:"type:uuid" json:"job_id"`
	RecruiterID   uuid.UUID       `gorm:"type:uuid" json:"recruiter_id"`
	CandidateID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Status        InterviewStatus `gorm:"type:text;not null;default:'invitation_sent'" json:"status"`
	ScheduledTime *time.Time      `gorm:"type:timestamp" json:"scheduled_time,omitempty"`
	CreatedAt     time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
