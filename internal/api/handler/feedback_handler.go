package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// FeedbackHandler handles platform feedback.
type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

// NewFeedbackHandler creates the FeedbackHandler.
func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// Create stores a feedback entry from the caller.
// POST /api/v1/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid feedback payload")
		return
	}

	entry, err := h.feedbackSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, entry)
}

// List returns the caller's past feedback.
// GET /api/v1/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.feedbackSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, entries)
}
