package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/storage"
)

// GoogleVerifier verifies Google ID tokens
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	users      storage.UserRepository
	jwtService *auth.JWTService
	googleAuth GoogleVerifier
	hasher     *auth.PasswordHasher
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	users storage.UserRepository,
	jwtService *auth.JWTService,
	googleAuth GoogleVerifier,
	hasher *auth.PasswordHasher,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		googleAuth: googleAuth,
		hasher:     hasher,
		logger:     logger.Named("auth"),
	}
}

// Signup handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user; candidates get an empty profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.TokenResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to process registration", "")
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		Provider:     models.ProviderEmail,
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		storeError(c, h.logger, err, "User not found", "Email already registered")
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))
	h.respondWithToken(c, http.StatusCreated, user)
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.TokenResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Incorrect email or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		storeError(c, h.logger, err, "", "")
		return
	}

	if user == nil || !h.hasher.Verify(req.Password, user.PasswordHash) {
		c.Header("WWW-Authenticate", "Bearer")
		respondError(c, http.StatusUnauthorized, "Incorrect email or password", "")
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// GoogleLogin handles Google SSO authentication
// @Summary Login with Google
// @Description Login or register using a Google ID token; new users are candidates
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.TokenResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 503 {object} models.ErrorResponse "Google sign-in not configured"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	googleUser, err := h.googleAuth.VerifyIDToken(ctx, req.IDToken)
	if errors.Is(err, auth.ErrGoogleNotConfigured) {
		respondError(c, http.StatusServiceUnavailable, "Google sign-in is not configured", "")
		return
	}
	if err != nil {
		h.logger.Warn("google token rejected", zap.Error(err))
		respondError(c, http.StatusUnauthorized, "Invalid Google token", err.Error())
		return
	}

	user, err := h.findOrCreateGoogleUser(ctx, googleUser)
	if err != nil {
		storeError(c, h.logger, err, "User not found", "Email already registered")
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) findOrCreateGoogleUser(ctx context.Context, info *auth.GoogleUserInfo) (*models.User, error) {
	user, err := h.users.GetUserByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	user, err = h.users.GetUserByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if err := h.users.LinkGoogleAccount(ctx, user.ID, info.GoogleID); err != nil {
			return nil, err
		}
		h.logger.Info("google account linked", zap.String("user_id", user.ID.String()))
		return user, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	googleID := info.GoogleID
	user = &models.User{
		Email:    info.Email,
		FullName: info.Name,
		Role:     models.RoleCandidate,
		Provider: models.ProviderGoogle,
		GoogleID: &googleID,
	}
	if err := h.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	h.logger.Info("google user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Me returns the current user
// @Summary Current user
// @Description Get the authenticated user's account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusUnauthorized, "User not found", "")
		return
	}
	if err != nil {
		storeError(c, h.logger, err, "", "")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Refresh issues a new token for a still-valid one
// @Summary Refresh token
// @Description Exchange a valid token for one with a fresh expiry
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh request"
// @Success 200 {object} models.TokenResponse "New token"
// @Failure 401 {object} models.ErrorResponse "Invalid or expired token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	claims, err := h.jwtService.ValidateToken(req.Token)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid or expired token", err.Error())
		return
	}

	userID, _ := claims.UserUUID()
	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "User not found", "")
			return
		}
		storeError(c, h.logger, err, "", "")
		return
	}

	token, err := h.jwtService.RefreshToken(req.Token)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid or expired token", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.NewTokenResponse(token, user))
}

func (h *AuthHandler) respondWithToken(c *gin.Context, code int, user *models.User) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}
	c.JSON(code, models.NewTokenResponse(token, user))
}
