package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/config"
)

// ErrNoAPIKey is returned when the mentor feature is not configured.
var ErrNoAPIKey = errors.New("ai: api key not configured")

// Client calls the Gemini generative-text API.
// One request per chat message; no conversation history is kept.
type Client struct {
	apiKey string
	model  string
}

// NewClient creates a Gemini client from the ai configuration.
// The key stays server-side; it is never exposed to the SPA.
func NewClient(cfg *config.AIConfig) *Client {
	return &Client{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// GenerateReply sends a single user turn with a system instruction and
// returns the raw text reply.
func (c *Client) GenerateReply(ctx context.Context, systemInstruction, message string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("ai: create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("ai: generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("ai: empty response")
	}
	return text, nil
}
