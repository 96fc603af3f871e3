package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// SessionHandler handles mentorship session booking.
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler creates the SessionHandler.
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Create books a session with a mentor.
// POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid session payload")
		return
	}

	session, err := h.sessionSvc.BookSession(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, session)
}

// List returns the caller's booked sessions.
// GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	sessions, err := h.sessionSvc.ListMySessions(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, sessions)
}

// Calendar downloads the caller's sessions as an iCalendar file.
// GET /api/v1/sessions/calendar.ics
func (h *SessionHandler) Calendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	cal, err := h.sessionSvc.ExportCalendar(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sessions.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}
