package models

// SignupRequest represents registration request
// @Description User registration request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8,max=100" example:"password123"`
	FullName string `json:"full_name" binding:"required,min=1,max=255" example:"John Doe"`
	Role     Role   `json:"role" binding:"required,oneof=candidate recruiter admin" example:"candidate"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshRequest represents a token refresh request
// @Description Token refresh request
type RefreshRequest struct {
	Token string `json:"token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenResponse represents authentication response
// @Description Authentication response with JWT token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	User        *User  `json:"user"`
}

// NewTokenResponse creates a bearer token response
func NewTokenResponse(token string, user *User) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer", User: user}
}
