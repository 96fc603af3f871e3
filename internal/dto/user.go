package dto

import "github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"

// UserResponse is the sanitized user record (no password hash).
type UserResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	CodingProgress   int    `json:"coding_progress"`
	AptitudeProgress int    `json:"aptitude_progress"`
	CommProgress     int    `json:"comm_progress"`
	Subscription     string `json:"subscription"`
}

// NewUserResponse maps a user model to its response shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Department:       u.Department,
		CodingProgress:   u.CodingProgress,
		AptitudeProgress: u.AptitudeProgress,
		CommProgress:     u.CommProgress,
		Subscription:     u.Subscription,
	}
}

// UpdateProgressRequest sets one progress counter to an absolute value.
// Value carries no binding range on purpose: the service clamps it to
// [0,100], so an over-100 value (a contest boost pushing past the cap)
// still lands at 100 instead of being rejected.
type UpdateProgressRequest struct {
	Track string `json:"track" binding:"required,oneof=coding aptitude communication"`
	Value int    `json:"value"`
}

// UpdateSubscriptionRequest switches the subscription tier.
type UpdateSubscriptionRequest struct {
	Tier string `json:"tier" binding:"required,oneof=free premium"`
}
