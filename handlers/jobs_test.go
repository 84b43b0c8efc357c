package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiringplatform/backend/models"
)

func TestCompanyEndpoints(t *testing.T) {
	s := newTestServer(t)
	recruiter, _ := s.signup(t, "rec@example.com", models.RoleRecruiter)
	other, _ := s.signup(t, "other@example.com", models.RoleRecruiter)
	candidate, _ := s.signup(t, "cand@example.com", models.RoleCandidate)

	rec := s.do(t, http.MethodPost, "/api/companies", candidate, map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "This endpoint requires recruiter role", decodeError(t, rec).Error)

	rec = s.do(t, http.MethodPost, "/api/companies", recruiter, map[string]any{"name": "Acme", "industry": "Software"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var company models.Company
	decode(t, rec, &company)

	rec = s.do(t, http.MethodPost, "/api/companies", other, map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A company with this name already exists", decodeError(t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/companies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var companies []models.Company
	decode(t, rec, &companies)
	assert.Len(t, companies, 1)

	rec = s.do(t, http.MethodGet, "/api/companies/"+company.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/companies/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/companies/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/companies/"+company.ID.String(), other, map[string]any{"location": "Berlin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/companies/"+company.ID.String(), recruiter, map[string]any{"location": "Berlin"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Company
	decode(t, rec, &updated)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Berlin", *updated.Location)
	assert.Equal(t, "Acme", updated.Name)

	rec = s.do(t, http.MethodDelete, "/api/companies/"+company.ID.String(), recruiter, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateJob(t *testing.T) {
	s := newTestServer(t)
	recruiter, user := s.signup(t, "rec@example.com", models.RoleRecruiter)
	other, _ := s.signup(t, "other@example.com", models.RoleRecruiter)

	job := s.postJob(t, recruiter, map[string]any{"skills_required": "Go, PostgreSQL"})
	assert.Equal(t, models.JobStatusPublished, job.Status)
	assert.Equal(t, "on-site", string(job.RemoteType))
	assert.Equal(t, models.EmploymentFullTime, job.EmploymentType)
	assert.Equal(t, "USD", job.Currency)
	require.NotNil(t, job.PostedBy)
	assert.Equal(t, user.ID, *job.PostedBy)

	body := map[string]any{
		"company_id":  job.CompanyID,
		"title":       "Someone else's job",
		"description": "Trying to post for a foreign company",
	}
	rec := s.do(t, http.MethodPost, "/api/jobs", other, body)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only post jobs for companies you created", decodeError(t, rec).Error)

	body["company_id"] = uuid.New()
	rec = s.do(t, http.MethodPost, "/api/jobs", recruiter, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body["description"] = "short"
	rec = s.do(t, http.MethodPost, "/api/jobs", recruiter, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "description")
}

func TestListJobs(t *testing.T) {
	s := newTestServer(t)
	recruiter, _ := s.signup(t, "rec@example.com", models.RoleRecruiter)

	published := s.postJob(t, recruiter, map[string]any{"title": "Go Developer"})
	s.postJob(t, recruiter, map[string]any{"status": models.JobStatusDraft})

	rec := s.do(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobs []models.Job
	decode(t, rec, &jobs)
	require.Len(t, jobs, 1)
	assert.Equal(t, published.ID, jobs[0].ID)
	require.NotNil(t, jobs[0].Company)
	assert.Equal(t, published.CompanyID, jobs[0].Company.ID)

	rec = s.do(t, http.MethodGet, "/api/jobs?status=draft", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &jobs)
	assert.Len(t, jobs, 1)

	rec = s.do(t, http.MethodGet, "/api/jobs?limit=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/jobs?remote_type=anywhere", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/jobs/company/"+published.CompanyID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &jobs)
	assert.Len(t, jobs, 1)
}

func TestGetJobWithMatch(t *testing.T) {
	s := newTestServer(t)
	recruiter, _ := s.signup(t, "rec@example.com", models.RoleRecruiter)
	candidate, _ := s.signup(t, "cand@example.com", models.RoleCandidate)

	job := s.postJob(t, recruiter, map[string]any{
		"skills_required": "Go, Docker",
		"remote_type":     "remote",
		"experience_min":  2,
	})

	rec := s.do(t, http.MethodPatch, "/api/candidates/me", candidate, map[string]any{
		"skills_text":      "go, kubernetes",
		"experience_years": 4,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/jobs/"+job.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var anonymous models.JobDetailResponse
	decode(t, rec, &anonymous)
	assert.Nil(t, anonymous.Match)
	assert.Equal(t, job.ID, anonymous.ID)

	rec = s.do(t, http.MethodGet, "/api/jobs/"+job.ID.String(), candidate, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail models.JobDetailResponse
	decode(t, rec, &detail)
	require.NotNil(t, detail.Match)
	assert.Equal(t, []string{"go"}, detail.Match.MatchedSkills)
	assert.Equal(t, []string{"docker"}, detail.Match.MissingSkills)
	// 50*0.6 + 100*0.25 + 100*0.15
	assert.InDelta(t, 70.0, detail.Match.MatchScore, 0.01)

	rec = s.do(t, http.MethodGet, "/api/jobs/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", decodeError(t, rec).Error)
}

func TestUpdateAndDeleteJob(t *testing.T) {
	s := newTestServer(t)
	recruiter, _ := s.signup(t, "rec@example.com", models.RoleRecruiter)
	other, _ := s.signup(t, "other@example.com", models.RoleRecruiter)

	job := s.postJob(t, recruiter, nil)
	path := "/api/jobs/" + job.ID.String()

	rec := s.do(t, http.MethodPatch, path, other, map[string]any{"status": "closed"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPatch, path, recruiter, map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, path, recruiter, map[string]any{"status": "closed", "remote_type": "hybrid"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Job
	decode(t, rec, &updated)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
	assert.Equal(t, "hybrid", string(updated.RemoteType))
	assert.Equal(t, job.Title, updated.Title)

	rec = s.do(t, http.MethodDelete, path, other, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodDelete, path, recruiter, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
