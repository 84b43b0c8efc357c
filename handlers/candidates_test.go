package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/resume"
)

func TestCandidateProfile(t *testing.T) {
	s := newTestServer(t)
	token, user := s.signup(t, "cand@example.com", models.RoleCandidate)
	recruiter, _ := s.signup(t, "rec@example.com", models.RoleRecruiter)

	rec := s.do(t, http.MethodPost, "/api/candidates/me", token, map[string]any{"experience_years": 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Candidate profile already exists. Use PATCH to update.", decodeError(t, rec).Error)

	rec = s.do(t, http.MethodPatch, "/api/candidates/me", token, map[string]any{"experience_years": 51})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/candidates/me", token, map[string]any{"headline": "Go engineer", "location": "Lisbon"})
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Candidate
	decode(t, rec, &profile)
	require.NotNil(t, profile.Headline)
	assert.Equal(t, "Go engineer", *profile.Headline)
	assert.Equal(t, user.ID, profile.UserID)

	rec = s.do(t, http.MethodGet, "/api/candidates/me", recruiter, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/candidates/"+profile.ID.String(), recruiter, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/candidates/"+profile.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	other, _ := s.signup(t, "other@example.com", models.RoleCandidate)
	rec = s.do(t, http.MethodGet, "/api/candidates/"+profile.ID.String(), other, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only view your own profile", decodeError(t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/candidates/"+uuid.NewString(), recruiter, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProfileForAdmin(t *testing.T) {
	s := newTestServer(t)

	// admins have no profile; the role check still applies
	admin, _ := s.signup(t, "admin@example.com", models.RoleAdmin)
	rec := s.do(t, http.MethodPost, "/api/candidates/me", admin, map[string]any{"experience_years": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadResumeFillsEmptyFields(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "cand@example.com", models.RoleCandidate)

	rec := s.do(t, http.MethodPatch, "/api/candidates/me", token, map[string]any{"experience_years": 9})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.upload(t, "/api/candidates/me/resume", token, "cv.txt", []byte(sampleResume))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ResumeUploadResponse
	decode(t, rec, &resp)
	assert.Equal(t, "Resume uploaded successfully", resp.Message)
	assert.Empty(t, resp.ResumeURL)
	require.NotNil(t, resp.Parsed)
	require.NotNil(t, resp.Candidate)

	// experience was already set and is kept
	assert.Equal(t, 9, resp.Candidate.ExperienceYears)
	require.NotNil(t, resp.Candidate.SkillsText)
	assert.Equal(t, "Python, Aws, Docker", *resp.Candidate.SkillsText)
	assert.NotNil(t, resp.Candidate.Phone)
}

type fakeResumeStore struct {
	uploads map[uuid.UUID][]byte
	err     error
}

func (f *fakeResumeStore) UploadResume(ctx context.Context, candidateID uuid.UUID, content []byte, filename string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads[candidateID] = content
	return "https://storage.googleapis.com/resumes/" + candidateID.String() + "/cv.txt", nil
}

func (f *fakeResumeStore) DownloadResume(ctx context.Context, objectURL string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeResumeStore) DeleteResume(ctx context.Context, objectURL string) error {
	return nil
}

func TestUploadResumeArchives(t *testing.T) {
	s := newTestServer(t)
	token, user := s.signup(t, "cand@example.com", models.RoleCandidate)

	candidate, err := s.store.GetCandidateByUserID(context.Background(), user.ID)
	require.NoError(t, err)

	parser := resume.NewParser()
	parser.Register(".txt", plainText{})
	archive := &fakeResumeStore{uploads: make(map[uuid.UUID][]byte)}
	handler := NewCandidateHandler(s.store, archive, parser, 10*1024*1024, zaptest.NewLogger(t))

	s.router.POST("/test/resume", auth.AuthMiddleware(s.jwt), handler.UploadResume)

	rec := s.upload(t, "/test/resume", token, "cv.txt", []byte(sampleResume))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ResumeUploadResponse
	decode(t, rec, &resp)
	assert.Contains(t, resp.ResumeURL, candidate.ID.String())
	require.NotNil(t, resp.Candidate.ResumeURL)
	assert.Equal(t, resp.ResumeURL, *resp.Candidate.ResumeURL)
	assert.Equal(t, []byte(sampleResume), archive.uploads[candidate.ID])

	archive.err = errors.New("bucket unavailable")
	rec = s.upload(t, "/test/resume", token, "cv.txt", []byte(sampleResume))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to upload resume", decodeError(t, rec).Error)
}
