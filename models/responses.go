package models

// AuthResponse is returned by signup and login. It deliberately carries only
// the identity of the authenticated user.
type AuthResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// NewAuthResponse builds an AuthResponse from a stored user.
func NewAuthResponse(user User) AuthResponse {
	return AuthResponse{ID: user.UserID, Email: user.Email}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
