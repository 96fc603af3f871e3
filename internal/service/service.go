package service

import (
	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/config"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/jwt"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/redis"
)

// Service aggregates all business-layer interfaces.
type Service struct {
	Auth     AuthService
	User     UserService
	Course   CourseService
	Book     BookService
	Session  SessionService
	Feedback FeedbackService
	Contest  ContestService
	Chat     ChatService
	Export   ExportService
}

// NewService wires the business layer.
// rdb may be nil (degraded mode), mentor may be nil (chat falls back).
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	mentor MentorClient,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Course:   NewCourseService(repo, logger),
		Book:     NewBookService(repo, logger),
		Session:  NewSessionService(repo, logger),
		Feedback: NewFeedbackService(repo, logger),
		Contest:  NewContestService(repo, logger),
		Chat:     NewChatService(mentor, logger),
		Export:   NewExportService(repo, logger),
	}
}
