package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

// progressColumns maps track names to their users-table columns. Updates go
// through this map only, so client input never reaches a column name.
var progressColumns = map[string]string{
	model.TrackCoding:        "coding_progress",
	model.TrackAptitude:      "aptitude_progress",
	model.TrackCommunication: "comm_progress",
}

// UserService handles progress counters and the subscription tier.
type UserService interface {
	UpdateProgress(ctx context.Context, userID int64, req *dto.UpdateProgressRequest) (*dto.UserResponse, error)
	UpdateSubscription(ctx context.Context, userID int64, req *dto.UpdateSubscriptionRequest) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// UpdateProgress sets one counter to an absolute value, clamped to [0,100].
func (s *userService) UpdateProgress(ctx context.Context, userID int64, req *dto.UpdateProgressRequest) (*dto.UserResponse, error) {
	column, ok := progressColumns[req.Track]
	if !ok {
		return nil, errors.New("unknown progress track")
	}

	value := ClampProgress(req.Value)
	if err := s.repo.User.UpdateProgress(ctx, userID, column, value); err != nil {
		s.logger.Error("update progress failed", zap.Error(err))
		return nil, err
	}

	return s.currentUser(ctx, userID)
}

func (s *userService) UpdateSubscription(ctx context.Context, userID int64, req *dto.UpdateSubscriptionRequest) (*dto.UserResponse, error) {
	if err := s.repo.User.UpdateSubscription(ctx, userID, req.Tier); err != nil {
		s.logger.Error("update subscription failed", zap.Error(err))
		return nil, err
	}
	return s.currentUser(ctx, userID)
}

func (s *userService) currentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ClampProgress bounds a counter value to [0,100].
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
