package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/matching"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/storage"
)

const jobNotFound = "Job not found"

// JobStore is the persistence needed by job endpoints
type JobStore interface {
	storage.JobRepository
	storage.CompanyRepository
	storage.CandidateRepository
}

// JobHandler handles job posting requests
type JobHandler struct {
	store  JobStore
	logger *zap.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(store JobStore, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		store:  store,
		logger: logger.Named("jobs"),
	}
}

// List returns job postings
// @Summary List jobs
// @Description List jobs; status defaults to published. Skills is a comma-separated any-of filter.
// @Tags Jobs
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param status query string false "draft, published or closed"
// @Param location query string false "Location contains"
// @Param remote_type query string false "on-site, remote or hybrid"
// @Param skills query string false "Comma-separated skills"
// @Param title query string false "Title contains"
// @Success 200 {array} models.Job
// @Failure 400 {object} models.ErrorResponse "Invalid query parameters"
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query models.JobListQuery
	if !bindQuery(c, &query) {
		return
	}

	status := query.Status
	if status == "" {
		status = models.JobStatusPublished
	}

	jobs, err := h.store.ListJobs(c.Request.Context(), storage.JobFilter{
		Status:     status,
		Location:   query.Location,
		RemoteType: query.RemoteType,
		Skills:     storage.SplitSkills(query.Skills),
		Title:      query.Title,
		Skip:       query.Skip,
		Limit:      query.Limit,
	})
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListByCompany returns the published jobs of a company
// @Summary List company jobs
// @Tags Jobs
// @Produce json
// @Param company_id path string true "Company ID"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (1-100)" default(20)
// @Success 200 {array} models.Job
// @Router /jobs/company/{company_id} [get]
func (h *JobHandler) ListByCompany(c *gin.Context) {
	companyID, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	var page models.Pagination
	if !bindQuery(c, &page) {
		return
	}

	jobs, err := h.store.ListJobs(c.Request.Context(), storage.JobFilter{
		CompanyID: &companyID,
		Status:    models.JobStatusPublished,
		Skip:      page.Skip,
		Limit:     page.Limit,
	})
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get returns a job with its company. Authenticated candidates with a profile
// also get their match against the job.
// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.JobDetailResponse
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	job, err := h.store.GetJob(ctx, id)
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}

	resp := models.JobDetailResponse{Job: job}

	if claims := auth.GetAuthClaims(c); claims != nil && claims.Role == models.RoleCandidate {
		userID, _ := claims.UserUUID()
		candidate, err := h.store.GetCandidateByUserID(ctx, userID)
		switch {
		case err == nil:
			match := models.NewMatchScoreResponse(matching.MatchDetails(candidate.Profile(), job.Requirements()))
			resp.Match = &match
		case !errors.Is(err, storage.ErrNotFound):
			h.logger.Warn("failed to load candidate for match", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Create posts a job for a company the caller created
// @Summary Create job
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.JobRequest true "Job"
// @Success 201 {object} models.Job
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 403 {object} models.ErrorResponse "Not the company creator"
// @Failure 404 {object} models.ErrorResponse "Company not found"
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.JobRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ApplyDefaults()

	ctx := c.Request.Context()

	company, err := h.store.GetCompany(ctx, req.CompanyID)
	if err != nil {
		storeError(c, h.logger, err, companyNotFound, "")
		return
	}
	if !isOwner(company.CreatedBy, userID) {
		respondError(c, http.StatusForbidden, "You can only post jobs for companies you created", "")
		return
	}

	job := &models.Job{
		CompanyID:      req.CompanyID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		RemoteType:     req.RemoteType,
		EmploymentType: req.EmploymentType,
		SkillsRequired: req.SkillsRequired,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Currency:       req.Currency,
		ExperienceMin:  req.ExperienceMin,
		ExperienceMax:  req.ExperienceMax,
		Status:         req.Status,
		PostedBy:       &userID,
	}
	if err := h.store.CreateJob(ctx, job); err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}

	h.logger.Info("job created", zap.String("job_id", job.ID.String()), zap.String("status", job.Status))
	c.JSON(http.StatusCreated, job)
}

// Update changes a job posted by the caller
// @Summary Update job
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body models.JobUpdateRequest true "Fields to change"
// @Success 200 {object} models.Job
// @Failure 403 {object} models.ErrorResponse "Not the poster"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	job, ok := h.postedJob(c, "You can only update jobs you posted")
	if !ok {
		return
	}

	var req models.JobUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.store.UpdateJob(c.Request.Context(), job.ID, req.Changes())
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a job posted by the caller, with its applications
// @Summary Delete job
// @Tags Jobs
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse "Not the poster"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	job, ok := h.postedJob(c, "You can only delete jobs you posted")
	if !ok {
		return
	}

	if err := h.store.DeleteJob(c.Request.Context(), job.ID); err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}

	h.logger.Info("job deleted", zap.String("job_id", job.ID.String()))
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) postedJob(c *gin.Context, forbidden string) (*models.Job, bool) {
	userID, _, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	job, err := h.store.GetJob(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return nil, false
	}
	if !isOwner(job.PostedBy, userID) {
		respondError(c, http.StatusForbidden, forbidden, "")
		return nil, false
	}
	return job, true
}
