package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/hiringplatform/backend/config"
	"github.com/hiringplatform/backend/utils"
)

// ErrGoogleNotConfigured is returned when GOOGLE_CLIENT_ID is not set
var ErrGoogleNotConfigured = errors.New("Google Client ID not configured")

// GoogleAuthService handles Google SSO verification
type GoogleAuthService struct {
	clientID  string
	validator *idtoken.Validator
}

// GoogleUserInfo represents user info from Google token
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
}

// NewGoogleAuthService creates a new Google auth service. Without a client ID
// the service is created but every verification fails.
func NewGoogleAuthService(ctx context.Context, cfg *config.Config) (*GoogleAuthService, error) {
	s := &GoogleAuthService{clientID: cfg.GoogleClientID}
	if s.clientID == "" {
		return s, nil
	}

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	validator, err := idtoken.NewValidator(ctx, option.WithHTTPClient(utils.NewHTTPClient(timeout)))
	if err != nil {
		return nil, fmt.Errorf("failed to create ID token validator: %w", err)
	}
	s.validator = validator

	return s, nil
}

// VerifyIDToken verifies a Google ID token and returns user info
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" || s.validator == nil {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := s.validator.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	return userInfoFromClaims(payload.Subject, payload.Claims)
}

func userInfoFromClaims(subject string, claims map[string]interface{}) (*GoogleUserInfo, error) {
	userInfo := &GoogleUserInfo{
		GoogleID: subject,
	}

	if email, ok := claims["email"].(string); ok {
		userInfo.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		userInfo.Name = name
	}

	if userInfo.Email == "" {
		return nil, errors.New("email not found in token")
	}
	if userInfo.Name == "" {
		userInfo.Name = userInfo.Email
	}

	return userInfo, nil
}
