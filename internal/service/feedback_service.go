package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

// FeedbackService handles the append-only feedback log.
type FeedbackService interface {
	Create(ctx context.Context, userID int64, req *dto.CreateFeedbackRequest) (*model.Feedback, error)
	ListMine(ctx context.Context, userID int64) ([]model.Feedback, error)
}

type feedbackService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFeedbackService creates the FeedbackService.
func NewFeedbackService(repo *repository.Repository, logger *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, logger: logger}
}

func (s *feedbackService) Create(ctx context.Context, userID int64, req *dto.CreateFeedbackRequest) (*model.Feedback, error) {
	feedback := &model.Feedback{
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		s.logger.Error("create feedback failed", zap.Error(err))
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) ListMine(ctx context.Context, userID int64) ([]model.Feedback, error) {
	return s.repo.Feedback.ListByUser(ctx, userID)
}
