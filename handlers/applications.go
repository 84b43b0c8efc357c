package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/matching"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/storage"
)

const applicationNotFound = "Application not found"

// ApplicationStore is the persistence needed by application endpoints
type ApplicationStore interface {
	storage.ApplicationRepository
	storage.JobRepository
	storage.CandidateRepository
	storage.ScreeningRepository
	storage.InterviewRepository
}

// ApplicationHandler handles applications with their screening answers and interviews
type ApplicationHandler struct {
	store  ApplicationStore
	logger *zap.Logger
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(store ApplicationStore, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		store:  store,
		logger: logger.Named("applications"),
	}
}

// Create applies the caller to a published job and stores the match score
// @Summary Apply to job
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ApplicationRequest true "Application"
// @Success 201 {object} models.Application
// @Failure 400 {object} models.ErrorResponse "Job not published or already applied"
// @Failure 404 {object} models.ErrorResponse "Job or profile not found"
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	candidate, err := h.store.GetCandidateByUserID(ctx, userID)
	if err != nil {
		storeError(c, h.logger, err, "Candidate profile not found. Please complete your profile first.", "")
		return
	}

	job, err := h.store.GetJob(ctx, req.JobID)
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}
	if job.Status != models.JobStatusPublished {
		respondError(c, http.StatusBadRequest, "Cannot apply to a job that is not published", "")
		return
	}

	application := &models.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		Status:      models.ApplicationStatusApplied,
		MatchScore:  matching.ComputeMatchScore(candidate.Profile(), job.Requirements()),
		CoverLetter: req.CoverLetter,
	}
	if err := h.store.CreateApplication(ctx, application); err != nil {
		storeError(c, h.logger, err, applicationNotFound, "You have already applied to this job")
		return
	}

	h.logger.Info("application created",
		zap.String("application_id", application.ID.String()),
		zap.String("job_id", job.ID.String()),
		zap.Float64("match_score", application.MatchScore),
	)
	c.JSON(http.StatusCreated, application)
}

// ListMine returns the caller's applications
// @Summary My applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param status query string false "Application status"
// @Success 200 {array} models.Application
// @Router /applications/my [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var query models.ApplicationListQuery
	if !bindQuery(c, &query) {
		return
	}

	ctx := c.Request.Context()

	candidate, err := h.store.GetCandidateByUserID(ctx, userID)
	if err != nil {
		storeError(c, h.logger, err, candidateNotFound, "")
		return
	}

	applications, err := h.store.ListApplicationsByCandidate(ctx, candidate.ID, query)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListForJob returns the applications to a job the caller posted
// @Summary Job applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param job_id path string true "Job ID"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param status query string false "Application status"
// @Param sort_by query string false "match_score or created_at" default(match_score)
// @Success 200 {array} models.Application
// @Failure 403 {object} models.ErrorResponse "Not the poster"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /applications/job/{job_id} [get]
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	var query models.ApplicationListQuery
	if !bindQuery(c, &query) {
		return
	}

	ctx := c.Request.Context()

	job, err := h.store.GetJob(ctx, jobID)
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}
	if !isOwner(job.PostedBy, userID) {
		respondError(c, http.StatusForbidden, "You can only view applications for jobs you posted", "")
		return
	}

	applications, err := h.store.ListApplicationsByJob(ctx, jobID, query)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Get returns one application to its candidate, the job poster or an admin
// @Summary Get application
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} models.Application
// @Failure 403 {object} models.ErrorResponse "No access"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	application, ok := h.accessibleApplication(c, accessOwner|accessPoster|accessAdmin)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, application)
}

// Update moves an application through the pipeline
// @Summary Update application
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.ApplicationUpdateRequest true "Status and notes"
// @Success 200 {object} models.Application
// @Failure 403 {object} models.ErrorResponse "Not the poster"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) Update(c *gin.Context) {
	application, ok := h.accessibleApplication(c, accessPoster)
	if !ok {
		return
	}

	var req models.ApplicationUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.store.UpdateApplication(c.Request.Context(), application.ID, req.Changes())
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}

	h.logger.Info("application updated",
		zap.String("application_id", updated.ID.String()),
		zap.String("status", updated.Status),
	)
	c.JSON(http.StatusOK, updated)
}

// SubmitScreeningAnswers stores the caller's screening answers
// @Summary Submit screening answers
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.ScreeningAnswersRequest true "Answers"
// @Success 201 {array} models.ScreeningAnswer
// @Failure 403 {object} models.ErrorResponse "Not your application"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id}/screening-answers [post]
func (h *ApplicationHandler) SubmitScreeningAnswers(c *gin.Context) {
	application, ok := h.accessibleApplication(c, accessOwner)
	if !ok {
		return
	}

	var req models.ScreeningAnswersRequest
	if !bindJSON(c, &req) {
		return
	}

	answers, err := h.store.CreateScreeningAnswers(c.Request.Context(), application.ID, req.Answers)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	c.JSON(http.StatusCreated, answers)
}

// ListScreeningAnswers returns the screening answers of an application
// @Summary List screening answers
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {array} models.ScreeningAnswer
// @Failure 403 {object} models.ErrorResponse "No access"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id}/screening-answers [get]
func (h *ApplicationHandler) ListScreeningAnswers(c *gin.Context) {
	application, ok := h.accessibleApplication(c, accessOwner|accessPoster)
	if !ok {
		return
	}

	answers, err := h.store.ListScreeningAnswers(c.Request.Context(), application.ID)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	c.JSON(http.StatusOK, answers)
}

// ScheduleInterview schedules an interview for an application
// @Summary Schedule interview
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.InterviewRequest true "Interview"
// @Success 201 {object} models.Interview
// @Failure 403 {object} models.ErrorResponse "Not the poster"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id}/interviews [post]
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	application, ok := h.accessibleApplication(c, accessPoster)
	if !ok {
		return
	}

	var req models.InterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	userID, _, _ := currentUser(c)
	interview := &models.Interview{
		ApplicationID: application.ID,
		ScheduledAt:   req.ScheduledAt,
		MeetingLink:   req.MeetingLink,
		InterviewType: req.InterviewType,
		InterviewerID: &userID,
		Status:        models.InterviewStatusScheduled,
		Notes:         req.Notes,
	}
	if req.DurationMinutes != nil {
		interview.DurationMinutes = *req.DurationMinutes
	}

	if err := h.store.CreateInterview(c.Request.Context(), interview); err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}

	h.logger.Info("interview scheduled",
		zap.String("interview_id", interview.ID.String()),
		zap.Time("scheduled_at", interview.ScheduledAt),
	)
	c.JSON(http.StatusCreated, interview)
}

// ListInterviews returns the interviews of an application
// @Summary List interviews
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {array} models.Interview
// @Failure 403 {object} models.ErrorResponse "No access"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id}/interviews [get]
func (h *ApplicationHandler) ListInterviews(c *gin.Context) {
	application, ok := h.accessibleApplication(c, accessOwner|accessPoster)
	if !ok {
		return
	}

	interviews, err := h.store.ListInterviews(c.Request.Context(), application.ID)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	c.JSON(http.StatusOK, interviews)
}

// UpdateInterview records the outcome of an interview
// @Summary Update interview
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interview ID"
// @Param request body models.InterviewUpdateRequest true "Fields to change"
// @Success 200 {object} models.Interview
// @Failure 403 {object} models.ErrorResponse "Not the poster"
// @Failure 404 {object} models.ErrorResponse "Interview not found"
// @Router /interviews/{id} [patch]
func (h *ApplicationHandler) UpdateInterview(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.InterviewUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	interview, err := h.store.GetInterview(ctx, id)
	if err != nil {
		storeError(c, h.logger, err, "Interview not found", "")
		return
	}

	application, err := h.store.GetApplication(ctx, interview.ApplicationID)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	if application.Job == nil || !isOwner(application.Job.PostedBy, userID) {
		respondError(c, http.StatusForbidden, "You can only update interviews for jobs you posted", "")
		return
	}

	updated, err := h.store.UpdateInterview(ctx, interview.ID, req.Changes())
	if err != nil {
		storeError(c, h.logger, err, "Interview not found", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

type access int

const (
	accessOwner  access = 1 << iota // the applying candidate
	accessPoster                    // the recruiter who posted the job
	accessAdmin
)

// accessibleApplication loads the :id application and checks that the caller
// holds one of the allowed relations to it
func (h *ApplicationHandler) accessibleApplication(c *gin.Context, allowed access) (*models.Application, bool) {
	userID, role, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	ctx := c.Request.Context()

	application, err := h.store.GetApplication(ctx, id)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return nil, false
	}

	switch role {
	case models.RoleAdmin:
		if allowed&accessAdmin != 0 {
			return application, true
		}
	case models.RoleCandidate:
		if allowed&accessOwner != 0 && h.ownsApplication(c, userID, application) {
			return application, true
		}
		respondError(c, http.StatusForbidden, "You can only access your own applications", "")
		return nil, false
	case models.RoleRecruiter:
		if allowed&accessPoster != 0 && application.Job != nil && isOwner(application.Job.PostedBy, userID) {
			return application, true
		}
		respondError(c, http.StatusForbidden, "You can only access applications for jobs you posted", "")
		return nil, false
	}

	respondError(c, http.StatusForbidden, "You do not have access to this application", "")
	return nil, false
}

func (h *ApplicationHandler) ownsApplication(c *gin.Context, userID uuid.UUID, application *models.Application) bool {
	if application.Candidate != nil {
		return application.Candidate.UserID == userID
	}
	candidate, err := h.store.GetCandidateByUserID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return candidate.ID == application.CandidateID
}
