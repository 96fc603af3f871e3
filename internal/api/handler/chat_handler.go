package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// ChatHandler handles the AI mentor chat.
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler creates the ChatHandler.
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Send forwards one message to the AI mentor and returns the reply.
// POST /api/v1/chat
func (h *ChatHandler) Send(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid chat payload")
		return
	}

	reply, err := h.chatSvc.SendMessage(c.Request.Context(), GetDepartment(c), req.Message)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, reply)
}
