package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// UserHandler handles progress and subscription updates.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// UpdateProgress sets one of the caller's progress counters.
// PUT /api/v1/users/me/progress
func (h *UserHandler) UpdateProgress(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid progress payload")
		return
	}

	user, err := h.userSvc.UpdateProgress(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11003, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// UpdateSubscription switches the caller's subscription tier.
// PUT /api/v1/users/me/subscription
func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid subscription payload")
		return
	}

	user, err := h.userSvc.UpdateSubscription(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11003, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
