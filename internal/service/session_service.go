package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

const sessionDuration = time.Hour

// SessionService handles mentorship bookings.
type SessionService interface {
	BookSession(ctx context.Context, userID int64, req *dto.CreateSessionRequest) (*model.Session, error)
	ListMySessions(ctx context.Context, userID int64) ([]model.Session, error)
	ExportCalendar(ctx context.Context, userID int64) (string, error)
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService creates the SessionService.
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

// BookSession appends a booking. There is no overlap or conflict checking;
// the record is a statement of intent, not a calendar hold.
func (s *sessionService) BookSession(ctx context.Context, userID int64, req *dto.CreateSessionRequest) (*model.Session, error) {
	session := &model.Session{
		UserID:     userID,
		MentorName: req.MentorName,
		Date:       req.Date,
		Time:       req.Time,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ListMySessions(ctx context.Context, userID int64) ([]model.Session, error) {
	return s.repo.Session.ListByUser(ctx, userID)
}

// ExportCalendar renders the user's bookings as an iCalendar document.
// Sessions whose date/time fields do not parse are skipped rather than
// failing the whole export.
func (s *sessionService) ExportCalendar(ctx context.Context, userID int64) (string, error) {
	sessions, err := s.repo.Session.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//SkillUp//Mentor Sessions//EN")

	for _, session := range sessions {
		start, err := time.ParseInLocation("2006-01-02 15:04", session.Date+" "+session.Time, time.Local)
		if err != nil {
			s.logger.Warn("skipping unparseable session",
				zap.Int64("session_id", session.ID),
				zap.String("date", session.Date),
				zap.String("time", session.Time),
			)
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("session-%d@skillup", session.ID))
		event.SetCreatedTime(session.CreatedAt)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(sessionDuration))
		event.SetSummary("Mentor session with " + session.MentorName)
	}

	return cal.Serialize(), nil
}
