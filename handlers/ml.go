package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/matching"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/resume"
	"github.com/hiringplatform/backend/screening"
	"github.com/hiringplatform/backend/storage"
)

// MLStore is the persistence needed by the scoring endpoints
type MLStore interface {
	storage.ApplicationRepository
	storage.ScreeningRepository
	storage.JobRepository
	storage.CandidateRepository
}

// MLHandler exposes resume parsing, screening scoring and job matching
type MLHandler struct {
	store    MLStore
	parser   *resume.Parser
	maxBytes int64
	logger   *zap.Logger
}

// NewMLHandler creates a new scoring handler
func NewMLHandler(store MLStore, parser *resume.Parser, maxBytes int64, logger *zap.Logger) *MLHandler {
	return &MLHandler{
		store:    store,
		parser:   parser,
		maxBytes: maxBytes,
		logger:   logger.Named("ml"),
	}
}

// ParseResume extracts structured fields from a resume file
// @Summary Parse resume
// @Description Extract name, email, phone, skills, years of experience and education from a PDF or DOCX (max 10MB)
// @Tags ML
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume (PDF or DOCX)"
// @Success 200 {object} resume.ParsedResume
// @Failure 400 {object} models.ErrorResponse "Invalid format or unreadable text"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Router /ml/parse-resume [post]
func (h *MLHandler) ParseResume(c *gin.Context) {
	content, filename, ok := readResumeUpload(c, h.parser, h.maxBytes)
	if !ok {
		return
	}

	parsed, err := h.parser.Parse(content, filename)
	if err != nil {
		if resume.IsParseError(err) {
			respondError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.logger.Error("resume parsing failed", zap.String("filename", filename), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Error parsing resume", err.Error())
		return
	}

	c.JSON(http.StatusOK, parsed)
}

// ScoreScreening scores every screening answer of an application and stores the results
// @Summary Score screening answers
// @Description Keyword-based scoring of each answer (0-10) and an overall 0-100 score. An answer that fails to score counts as 0.
// @Tags ML
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ScreeningScoreRequest true "Application"
// @Success 200 {object} models.ScreeningScoreResponse
// @Failure 400 {object} models.ErrorResponse "No screening answers"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /ml/score-screening [post]
func (h *MLHandler) ScoreScreening(c *gin.Context) {
	var req models.ScreeningScoreRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.store.GetApplication(ctx, req.ApplicationID); err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}

	answers, err := h.store.ListScreeningAnswers(ctx, req.ApplicationID)
	if err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}
	if len(answers) == 0 {
		respondError(c, http.StatusBadRequest, "No screening answers found for this application", "")
		return
	}

	batch := make([]screening.Answer, len(answers))
	for i, a := range answers {
		batch[i] = screening.Answer{ID: a.ID.String(), Question: a.QuestionText, Answer: a.AnswerText}
	}
	outcomes := screening.ScoreBatch(batch)

	scores := make([]storage.AnswerScore, 0, len(outcomes))
	for i, outcome := range outcomes {
		if outcome.Failed() {
			h.logger.Warn("screening answer could not be scored",
				zap.String("answer_id", outcome.ID),
				zap.Error(outcome.Err),
			)
			continue
		}
		scores = append(scores, storage.AnswerScore{
			AnswerID:        answers[i].ID,
			Score:           outcome.Result.Score,
			KeywordsMatched: outcome.Result.MatchedKeywords,
		})
	}

	resp := models.NewScreeningScoreResponse(outcomes)
	if err := h.store.SaveScreeningScores(ctx, req.ApplicationID, resp.OverallScore, scores); err != nil {
		storeError(c, h.logger, err, applicationNotFound, "")
		return
	}

	h.logger.Info("screening scored",
		zap.String("application_id", req.ApplicationID.String()),
		zap.Int("answers", len(outcomes)),
		zap.Float64("overall_score", resp.OverallScore),
	)
	c.JSON(http.StatusOK, resp)
}

// MatchScore computes the match between a job and a candidate
// @Summary Match score
// @Description Weighted skills/experience/location match with matched and missing skills
// @Tags ML
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MatchScoreRequest true "Job and candidate"
// @Success 200 {object} models.MatchScoreResponse
// @Failure 404 {object} models.ErrorResponse "Job or candidate not found"
// @Router /ml/match-score [post]
func (h *MLHandler) MatchScore(c *gin.Context) {
	var req models.MatchScoreRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	job, err := h.store.GetJob(ctx, req.JobID)
	if err != nil {
		storeError(c, h.logger, err, jobNotFound, "")
		return
	}

	candidate, err := h.store.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		storeError(c, h.logger, err, "Candidate not found", "")
		return
	}

	result := matching.MatchDetails(candidate.Profile(), job.Requirements())
	c.JSON(http.StatusOK, models.NewMatchScoreResponse(result))
}
