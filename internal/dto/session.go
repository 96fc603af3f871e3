package dto

// CreateSessionRequest books a mentorship session.
type CreateSessionRequest struct {
	MentorName string `json:"mentor_name" binding:"required"`
	Date       string `json:"date"        binding:"required"` // YYYY-MM-DD
	Time       string `json:"time"        binding:"required"` // HH:MM
}
