package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiring-intel/internal/models"
)

type NegotiationRepository interface {
	FindLatestByInterview(ctx context.Context, interviewID uuid.UUID) (*models.NegotiationSession, error)
}

type negotiationRepository struct {
	db *gorm.DB
}

func NewNegotiationRepository(db *gorm.DB) NegotiationRepository {
	return &negotiationRepository{db: db}
}

// FindLatestByInterview returns the most recent negotiation session for an
// interview, or ErrNotFound when the interview never needed negotiation.
func (r *negotiationRepository) FindLatestByInterview(ctx context.Context, interviewID uuid.UUID) (*models.NegotiationSession, error) {
	var session models.NegotiationSession
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("negotiation for interview %s: %w", interviewID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find negotiation session: %w", err)
	}
	return &session, nil
}
