package handler

import "github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Course   *CourseHandler
	Book     *BookHandler
	Session  *SessionHandler
	Feedback *FeedbackHandler
	Contest  *ContestHandler
	Chat     *ChatHandler
	Export   *ExportHandler
}

// NewHandler wires the handler layer onto the business services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Course:   NewCourseHandler(svc.Course),
		Book:     NewBookHandler(svc.Book),
		Session:  NewSessionHandler(svc.Session),
		Feedback: NewFeedbackHandler(svc.Feedback),
		Contest:  NewContestHandler(svc.Contest),
		Chat:     NewChatHandler(svc.Chat),
		Export:   NewExportHandler(svc.Export),
	}
}
