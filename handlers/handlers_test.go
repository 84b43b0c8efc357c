package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/config"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/resume"
	"github.com/hiringplatform/backend/tools"
)

type fakeGoogle struct {
	info *auth.GoogleUserInfo
	err  error
}

func (f *fakeGoogle) VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

// plainText decodes .txt uploads so parsing can be tested without real documents
type plainText struct{}

func (plainText) ExtractText(content []byte) (string, error) {
	if len(content) == 0 {
		return "", errors.New("empty document")
	}
	return string(content), nil
}

type testServer struct {
	router *gin.Engine
	store  *memStore
	google *fakeGoogle
	jwt    *auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AllowedOrigins:   []string{"http://localhost:3000"},
		JWTSecret:        "test-secret",
		JWTExpiryMinutes: 60,
		MaxResumeBytes:   10 * 1024 * 1024,
	}

	parser := resume.NewParser()
	parser.Register(".txt", plainText{})

	store := newMemStore()
	google := &fakeGoogle{err: auth.ErrGoogleNotConfigured}

	jwt := auth.NewJWTService(cfg)

	router := NewRouter(RouterConfig{
		Config:     cfg,
		Store:      store,
		JWT:        jwt,
		GoogleAuth: google,
		Hasher:     auth.NewPasswordHasher(bcrypt.MinCost),
		Parser:     parser,
		Tools:      tools.NewScoringRegistry(parser),
		Logger:     zaptest.NewLogger(t),
	})

	return &testServer{router: router, store: store, google: google, jwt: jwt}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) upload(t *testing.T, path, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// signup registers a user and returns the access token with the user
func (s *testServer) signup(t *testing.T, email string, role models.Role) (string, *models.User) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/signup", "", models.SignupRequest{
		Email:    email,
		Password: "password123",
		FullName: "Test User",
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.TokenResponse
	decode(t, rec, &resp)
	return resp.AccessToken, resp.User
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	decode(t, rec, &resp)
	return resp
}

// postJob creates a company owned by token and a job under it
func (s *testServer) postJob(t *testing.T, token string, job map[string]any) models.Job {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/companies", token, map[string]any{"name": "Acme " + uuid.NewString()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var company models.Company
	decode(t, rec, &company)

	body := map[string]any{
		"company_id":  company.ID,
		"title":       "Backend Engineer",
		"description": "Build and run our hiring APIs",
		"status":      models.JobStatusPublished,
	}
	for k, v := range job {
		body[k] = v
	}

	rec = s.do(t, http.MethodPost, "/api/jobs", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Job
	decode(t, rec, &created)
	return created
}
