package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

// FeedbackRepository is the feedback data-access interface.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	ListByUser(ctx context.Context, userID int64) ([]model.Feedback, error)
}

type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo creates the GORM-backed FeedbackRepository.
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepo) ListByUser(ctx context.Context, userID int64) ([]model.Feedback, error) {
	var items []model.Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
