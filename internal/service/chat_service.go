package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
)

const fallbackReply = "Sorry, I'm having trouble connecting to my brain right now. Please try again in a moment."

// MentorClient generates a reply for a chat message given a system
// instruction. Implemented by pkg/ai.
type MentorClient interface {
	GenerateReply(ctx context.Context, systemInstruction, message string) (string, error)
}

// ChatService proxies chat messages to the AI mentor backend.
type ChatService interface {
	SendMessage(ctx context.Context, department, message string) (*dto.ChatResponse, error)
}

type chatService struct {
	mentor MentorClient
	logger *zap.Logger
}

// NewChatService creates the ChatService. A nil mentor client degrades
// to the canned fallback reply.
func NewChatService(mentor MentorClient, logger *zap.Logger) ChatService {
	return &chatService{mentor: mentor, logger: logger}
}

func (s *chatService) SendMessage(ctx context.Context, department, message string) (*dto.ChatResponse, error) {
	if s.mentor == nil {
		return &dto.ChatResponse{Reply: fallbackReply, Fallback: true}, nil
	}

	instruction := systemInstruction(department)
	reply, err := s.mentor.GenerateReply(ctx, instruction, message)
	if err != nil {
		s.logger.Warn("mentor reply failed, using fallback", zap.Error(err))
		return &dto.ChatResponse{Reply: fallbackReply, Fallback: true}, nil
	}

	return &dto.ChatResponse{Reply: reply}, nil
}

func systemInstruction(department string) string {
	if department == "" {
		department = "general studies"
	}
	return fmt.Sprintf("You are a holistic skill development mentor at SkillUp AI. "+
		"You specialize in %s. Give concise, practical guidance on coding, aptitude "+
		"and communication skills, and encourage the student to keep practicing.", department)
}
