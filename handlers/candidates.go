package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/resume"
	"github.com/hiringplatform/backend/storage"
)

const candidateNotFound = "Candidate profile not found"

// CandidateHandler handles candidate profile requests
type CandidateHandler struct {
	candidates storage.CandidateRepository
	resumes    storage.ResumeStore
	parser     *resume.Parser
	maxBytes   int64
	logger     *zap.Logger
}

// NewCandidateHandler creates a new candidate handler. resumes may be nil, in
// which case uploaded files are parsed but not archived.
func NewCandidateHandler(
	candidates storage.CandidateRepository,
	resumes storage.ResumeStore,
	parser *resume.Parser,
	maxBytes int64,
	logger *zap.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		candidates: candidates,
		resumes:    resumes,
		parser:     parser,
		maxBytes:   maxBytes,
		logger:     logger.Named("candidates"),
	}
}

// GetMe returns the caller's candidate profile
// @Summary Get my profile
// @Tags Candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Candidate
// @Failure 404 {object} models.ErrorResponse "Candidate profile not found"
// @Router /candidates/me [get]
func (h *CandidateHandler) GetMe(c *gin.Context) {
	candidate, ok := h.myProfile(c, candidateNotFound)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// CreateMe creates the caller's candidate profile
// @Summary Create my profile
// @Description Profiles are created at signup; this exists for accounts without one
// @Tags Candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CandidateRequest true "Profile"
// @Success 201 {object} models.Candidate
// @Failure 400 {object} models.ErrorResponse "Profile already exists"
// @Router /candidates/me [post]
func (h *CandidateHandler) CreateMe(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	const exists = "Candidate profile already exists. Use PATCH to update."

	ctx := c.Request.Context()
	_, err := h.candidates.GetCandidateByUserID(ctx, userID)
	if err == nil {
		respondError(c, http.StatusBadRequest, exists, "")
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		storeError(c, h.logger, err, candidateNotFound, "")
		return
	}

	candidate := &models.Candidate{
		UserID:          userID,
		Headline:        req.Headline,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		SkillsText:      req.SkillsText,
		Phone:           req.Phone,
		LinkedinURL:     req.LinkedinURL,
		GithubURL:       req.GithubURL,
	}
	if err := h.candidates.CreateCandidate(ctx, candidate); err != nil {
		storeError(c, h.logger, err, candidateNotFound, exists)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// UpdateMe changes the caller's candidate profile
// @Summary Update my profile
// @Tags Candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CandidateUpdateRequest true "Fields to change"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} models.ErrorResponse "Candidate profile not found"
// @Router /candidates/me [patch]
func (h *CandidateHandler) UpdateMe(c *gin.Context) {
	candidate, ok := h.myProfile(c, "Candidate profile not found. Create one first.")
	if !ok {
		return
	}

	var req models.CandidateUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.candidates.UpdateCandidate(c.Request.Context(), candidate.ID, req.Changes())
	if err != nil {
		storeError(c, h.logger, err, candidateNotFound, "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UploadResume parses an uploaded resume, archives it and fills empty profile fields
// @Summary Upload resume
// @Description Upload a PDF or DOCX resume (max 10MB). Empty phone, experience and skills are filled from it.
// @Tags Candidates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume (PDF or DOCX)"
// @Success 200 {object} models.ResumeUploadResponse
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 404 {object} models.ErrorResponse "Candidate profile not found"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Router /candidates/me/resume [post]
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	candidate, ok := h.myProfile(c, candidateNotFound)
	if !ok {
		return
	}

	content, filename, ok := readResumeUpload(c, h.parser, h.maxBytes)
	if !ok {
		return
	}

	parsed, err := h.parser.Parse(content, filename)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	ctx := c.Request.Context()
	changes := profileChanges(candidate, parsed)

	var resumeURL string
	if h.resumes != nil {
		resumeURL, err = h.resumes.UploadResume(ctx, candidate.ID, content, filename)
		if err != nil {
			h.logger.Error("failed to archive resume", zap.String("candidate_id", candidate.ID.String()), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to upload resume", "")
			return
		}
		changes["resume_url"] = resumeURL
	}

	if len(changes) > 0 {
		candidate, err = h.candidates.UpdateCandidate(ctx, candidate.ID, changes)
		if err != nil {
			storeError(c, h.logger, err, candidateNotFound, "")
			return
		}
	}

	h.logger.Info("resume processed",
		zap.String("candidate_id", candidate.ID.String()),
		zap.Int("skills", len(parsed.Skills)),
		zap.Bool("archived", resumeURL != ""),
	)

	c.JSON(http.StatusOK, models.ResumeUploadResponse{
		ResumeURL: resumeURL,
		Parsed:    parsed,
		Candidate: candidate,
		Message:   "Resume uploaded successfully",
	})
}

// profileChanges fills only the profile fields that are still empty
func profileChanges(candidate *models.Candidate, parsed *resume.ParsedResume) map[string]any {
	changes := make(map[string]any)

	if isBlank(candidate.Phone) && parsed.Phone != nil {
		changes["phone"] = *parsed.Phone
	}
	if candidate.ExperienceYears == 0 && parsed.ExperienceYears > 0 {
		changes["experience_years"] = parsed.ExperienceYears
	}
	if isBlank(candidate.SkillsText) && len(parsed.Skills) > 0 {
		changes["skills_text"] = strings.Join(parsed.Skills, ", ")
	}

	return changes
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Get returns a candidate profile. Candidates may only view their own.
// @Summary Get candidate
// @Tags Candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.Candidate
// @Failure 403 {object} models.ErrorResponse "Not your profile"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Router /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidates.GetCandidate(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.logger, err, "Candidate not found", "")
		return
	}

	if role == models.RoleCandidate && candidate.UserID != userID {
		respondError(c, http.StatusForbidden, "You can only view your own profile", "")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) myProfile(c *gin.Context, notFound string) (*models.Candidate, bool) {
	userID, _, ok := currentUser(c)
	if !ok {
		return nil, false
	}

	candidate, err := h.candidates.GetCandidateByUserID(c.Request.Context(), userID)
	if err != nil {
		storeError(c, h.logger, err, notFound, "")
		return nil, false
	}
	return candidate, true
}
