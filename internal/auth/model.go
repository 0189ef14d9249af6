package auth

import "time"

const RoleAdmin = "admin"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// SignUpRequest payload for account creation.
// swagger:model SignUpRequest
type SignUpRequest struct {
	Email    string `json:"email"    example:"jo@example.com"`
	Password string `json:"password" example:"hunter22"`
}

// SignInRequest payload for login.
// swagger:model SignInRequest
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
