package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// ContestHandler handles contests, registration and answer submission.
type ContestHandler struct {
	contestSvc service.ContestService
}

// NewContestHandler creates the ContestHandler.
func NewContestHandler(contestSvc service.ContestService) *ContestHandler {
	return &ContestHandler{contestSvc: contestSvc}
}

// List returns all contests with the caller's registration flags.
// GET /api/v1/contests
func (h *ContestHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	contests, err := h.contestSvc.ListContests(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, contests)
}

// Register signs the caller up for a contest. A repeat registration is
// a soft outcome, not an error.
// POST /api/v1/contests/:id/register
func (h *ContestHandler) Register(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	contestID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.contestSvc.Register(c.Request.Context(), userID, contestID)
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.NotFound(c, 14001, "contest not found")
			return
		}
		response.InternalError(c)
		return
	}

	if result.AlreadyRegistered {
		response.OKMessage(c, "already registered", result)
		return
	}
	response.OK(c, result)
}

// Questions returns the contest question set without correct answers.
// GET /api/v1/contests/:id/questions
func (h *ContestHandler) Questions(c *gin.Context) {
	contestID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	questions, err := h.contestSvc.ListQuestions(c.Request.Context(), contestID)
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.NotFound(c, 14001, "contest not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, questions)
}

// Submit scores the caller's answers for a contest.
// POST /api/v1/contests/:id/submit
func (h *ContestHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	contestID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid submission payload")
		return
	}

	result, err := h.contestSvc.SubmitAnswers(c.Request.Context(), userID, contestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotRegistered):
			response.Forbidden(c, 14002, "register for the contest before submitting")
		case errors.Is(err, service.ErrNoQuestions):
			response.BadRequest(c, 14003, "contest has no questions")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
