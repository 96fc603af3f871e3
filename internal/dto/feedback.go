package dto

// CreateFeedbackRequest submits platform feedback.
type CreateFeedbackRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
