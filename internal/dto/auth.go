package dto

// SignupRequest creates an account.
type SignupRequest struct {
	Name       string `json:"name"       binding:"required,min=2,max=100"`
	Email      string `json:"email"      binding:"required,email"`
	Password   string `json:"password"   binding:"required,min=6,max=72"`
	Department string `json:"department" binding:"required"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the access token and the sanitized user record.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}
