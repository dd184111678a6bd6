package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hiring-intel/internal/models"
)

type InterviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	FindTerminalByCandidate(ctx context.Context, candidateID, excludeInterviewID uuid.UUID) ([]models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// FindByID implements InterviewRepository.
func (r *interviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("interview %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}

// FindTerminalByCandidate returns the candidate's past interviews in a
// terminal state, excluding the interview currently under analysis.
func (r *interviewRepository) FindTerminalByCandidate(ctx context.Context, candidateID, excludeInterviewID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Where("id != ?", excludeInterviewID).
		Where("status IN ?", models.TerminalStatuses).
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interview history: %w", err)
	}
	return interviews, nil
}
