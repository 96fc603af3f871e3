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

var ErrCourseNotFound = errors.New("course not found")

// CourseService handles the catalog and enrollment.
type CourseService interface {
	ListCourses(ctx context.Context, department string) ([]model.Course, error)
	Enroll(ctx context.Context, userID, courseID int64) (*dto.EnrollResponse, error)
	ListMyEnrollments(ctx context.Context, userID int64) ([]model.Enrollment, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService creates the CourseService.
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) ListCourses(ctx context.Context, department string) ([]model.Course, error) {
	return s.repo.Course.List(ctx, department)
}

// Enroll inserts the pair and lets the composite key decide: a duplicate
// insert becomes the "already enrolled" soft outcome with no second row.
func (s *courseService) Enroll(ctx context.Context, userID, courseID int64) (*dto.EnrollResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("lookup course failed", zap.Error(err))
		return nil, err
	}

	err := s.repo.Course.CreateEnrollment(ctx, &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.EnrollResponse{CourseID: courseID, Enrolled: true, AlreadyEnrolled: true}, nil
		}
		s.logger.Error("create enrollment failed", zap.Error(err))
		return nil, err
	}

	return &dto.EnrollResponse{CourseID: courseID, Enrolled: true}, nil
}

func (s *courseService) ListMyEnrollments(ctx context.Context, userID int64) ([]model.Enrollment, error) {
	return s.repo.Course.ListEnrollments(ctx, userID)
}
