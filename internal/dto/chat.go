package dto

// ChatRequest is one message to the AI mentor.
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

// ChatResponse carries the mentor reply. Fallback is set when the reply is
// the canned message used after an upstream failure.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback,omitempty"`
}
