package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
)

func TestBookAndListSessions(t *testing.T) {
	repo := newTestRepo()
	svc := NewSessionService(repo, zap.NewNop())
	ctx := context.Background()

	session, err := svc.BookSession(ctx, 7, &dto.CreateSessionRequest{
		MentorName: "Dr. Anand",
		Date:       "2026-09-10",
		Time:       "14:00",
	})
	if err != nil {
		t.Fatalf("book session: %v", err)
	}
	if session.ID == 0 || session.UserID != 7 {
		t.Fatalf("unexpected session: %+v", session)
	}

	mine, err := svc.ListMySessions(ctx, 7)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 session, got %d", len(mine))
	}

	others, err := svc.ListMySessions(ctx, 8)
	if err != nil {
		t.Fatalf("list other user's sessions: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("sessions leaked across users: %d", len(others))
	}
}

func TestExportCalendar(t *testing.T) {
	repo := newTestRepo()
	svc := NewSessionService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.BookSession(ctx, 7, &dto.CreateSessionRequest{
		MentorName: "Dr. Anand", Date: "2026-09-10", Time: "14:00",
	}); err != nil {
		t.Fatalf("book session: %v", err)
	}
	// Unparseable entries are skipped, not fatal.
	if _, err := svc.BookSession(ctx, 7, &dto.CreateSessionRequest{
		MentorName: "Prof. Mehta", Date: "someday", Time: "later",
	}); err != nil {
		t.Fatalf("book session: %v", err)
	}

	cal, err := svc.ExportCalendar(ctx, 7)
	if err != nil {
		t.Fatalf("export calendar: %v", err)
	}
	if !strings.Contains(cal, "BEGIN:VCALENDAR") {
		t.Fatal("output is not an iCalendar document")
	}
	if !strings.Contains(cal, "Mentor session with Dr. Anand") {
		t.Fatal("calendar missing the booked session")
	}
	if strings.Count(cal, "BEGIN:VEVENT") != 1 {
		t.Fatalf("expected 1 event, got %d", strings.Count(cal, "BEGIN:VEVENT"))
	}
}
