package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/matching"
	"github.com/hiringplatform/backend/resume"
	"github.com/hiringplatform/backend/screening"
)

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"email is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Database  string `json:"database,omitempty" example:"ok"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// Pagination holds skip/limit query parameters
type Pagination struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// JobListQuery holds the filters of the job listing
type JobListQuery struct {
	Pagination
	Status     string `form:"status" binding:"omitempty,oneof=draft published closed"`
	Location   string `form:"location"`
	RemoteType string `form:"remote_type" binding:"omitempty,oneof=on-site remote hybrid"`
	Skills     string `form:"skills"` // comma-separated, any of
	Title      string `form:"title"`
}

// CompanyListQuery holds the filters of the company listing
type CompanyListQuery struct {
	Pagination
	Name     string `form:"name"`
	Industry string `form:"industry"`
}

// ApplicationListQuery holds the filters of application listings
type ApplicationListQuery struct {
	Pagination
	Status string `form:"status" binding:"omitempty,oneof=applied screening shortlisted interview rejected offer accepted declined"`
	SortBy string `form:"sort_by,default=match_score" binding:"omitempty,oneof=match_score created_at"`
}

// CandidateRequest creates a candidate profile
// @Description Candidate profile creation request
type CandidateRequest struct {
	Headline        *string `json:"headline" binding:"omitempty,max=500" example:"Backend engineer"`
	ExperienceYears int     `json:"experience_years" binding:"min=0,max=50" example:"5"`
	Location        *string `json:"location" binding:"omitempty,max=255" example:"Berlin"`
	SkillsText      *string `json:"skills_text" example:"Go, PostgreSQL"`
	Phone           *string `json:"phone" binding:"omitempty,max=20"`
	LinkedinURL     *string `json:"linkedin_url" binding:"omitempty,max=500"`
	GithubURL       *string `json:"github_url" binding:"omitempty,max=500"`
}

// CandidateUpdateRequest updates a candidate profile; absent fields are left unchanged
// @Description Candidate profile update request
type CandidateUpdateRequest struct {
	Headline        *string `json:"headline" binding:"omitempty,max=500"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,min=0,max=50"`
	Location        *string `json:"location" binding:"omitempty,max=255"`
	SkillsText      *string `json:"skills_text"`
	Phone           *string `json:"phone" binding:"omitempty,max=20"`
	LinkedinURL     *string `json:"linkedin_url" binding:"omitempty,max=500"`
	GithubURL       *string `json:"github_url" binding:"omitempty,max=500"`
	ResumeURL       *string `json:"resume_url"`
}

// CompanyRequest creates a company
// @Description Company creation request
type CompanyRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255" example:"Acme"`
	Description *string `json:"description"`
	Website     *string `json:"website" binding:"omitempty,max=500"`
	Industry    *string `json:"industry" binding:"omitempty,max=100"`
	Size        *string `json:"size" binding:"omitempty,max=50"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
}

// CompanyUpdateRequest updates a company; absent fields are left unchanged
// @Description Company update request
type CompanyUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Website     *string `json:"website" binding:"omitempty,max=500"`
	LogoURL     *string `json:"logo_url"`
	Industry    *string `json:"industry" binding:"omitempty,max=100"`
	Size        *string `json:"size" binding:"omitempty,max=50"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
}

// JobRequest creates a job posting
// @Description Job creation request
type JobRequest struct {
	CompanyID      uuid.UUID           `json:"company_id" binding:"required"`
	Title          string              `json:"title" binding:"required,min=1,max=255" example:"Senior Go Engineer"`
	Description    string              `json:"description" binding:"required,min=10"`
	Location       *string             `json:"location" binding:"omitempty,max=255"`
	RemoteType     matching.RemoteType `json:"remote_type" binding:"omitempty,oneof=on-site remote hybrid" example:"on-site"`
	EmploymentType string              `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship" example:"full-time"`
	SkillsRequired *string             `json:"skills_required" example:"Go, PostgreSQL"`
	SalaryMin      *float64            `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *float64            `json:"salary_max" binding:"omitempty,gte=0"`
	Currency       string              `json:"currency" binding:"omitempty,max=10" example:"USD"`
	ExperienceMin  int                 `json:"experience_min" binding:"gte=0"`
	ExperienceMax  *int                `json:"experience_max" binding:"omitempty,gte=0"`
	Status         string              `json:"status" binding:"omitempty,oneof=draft published closed" example:"draft"`
}

// ApplyDefaults fills the defaults of optional fields
func (r *JobRequest) ApplyDefaults() {
	if r.RemoteType == "" {
		r.RemoteType = matching.RemoteTypeOnSite
	}
	if r.EmploymentType == "" {
		r.EmploymentType = EmploymentFullTime
	}
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if r.Status == "" {
		r.Status = JobStatusDraft
	}
}

// JobUpdateRequest updates a job; absent fields are left unchanged
// @Description Job update request
type JobUpdateRequest struct {
	Title          *string              `json:"title" binding:"omitempty,min=1,max=255"`
	Description    *string              `json:"description" binding:"omitempty,min=10"`
	Location       *string              `json:"location" binding:"omitempty,max=255"`
	RemoteType     *matching.RemoteType `json:"remote_type" binding:"omitempty,oneof=on-site remote hybrid"`
	EmploymentType *string              `json:"employment_type" binding:"omitempty,oneof=full-time part-time contract internship"`
	SkillsRequired *string              `json:"skills_required"`
	SalaryMin      *float64             `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *float64             `json:"salary_max" binding:"omitempty,gte=0"`
	Currency       *string              `json:"currency" binding:"omitempty,max=10"`
	ExperienceMin  *int                 `json:"experience_min" binding:"omitempty,gte=0"`
	ExperienceMax  *int                 `json:"experience_max" binding:"omitempty,gte=0"`
	Status         *string              `json:"status" binding:"omitempty,oneof=draft published closed"`
}

// ApplicationRequest creates an application
// @Description Job application request
type ApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id" binding:"required"`
	CoverLetter *string   `json:"cover_letter"`
}

// ApplicationUpdateRequest updates an application's status or notes
// @Description Application update request
type ApplicationUpdateRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=applied screening shortlisted interview rejected offer accepted declined"`
	Notes  *string `json:"notes"`
}

// ScreeningAnswerInput is one submitted question/answer pair
type ScreeningAnswerInput struct {
	QuestionText string `json:"question_text" binding:"required" example:"Tell me about a project you led"`
	AnswerText   string `json:"answer_text" binding:"required"`
}

// ScreeningAnswersRequest submits screening answers for an application
// @Description Screening answers submission
type ScreeningAnswersRequest struct {
	Answers []ScreeningAnswerInput `json:"answers" binding:"required,min=1,dive"`
}

// InterviewRequest schedules an interview
// @Description Interview scheduling request
type InterviewRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes *int      `json:"duration_minutes" binding:"omitempty,min=15,max=480" example:"60"`
	MeetingLink     *string   `json:"meeting_link"`
	InterviewType   string    `json:"interview_type" binding:"omitempty,oneof=screening technical behavioral final" example:"technical"`
	Notes           *string   `json:"notes"`
}

// InterviewUpdateRequest updates an interview; absent fields are left unchanged
// @Description Interview update request
type InterviewUpdateRequest struct {
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
	MeetingLink     *string    `json:"meeting_link"`
	Status          *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Notes           *string    `json:"notes"`
	Feedback        *string    `json:"feedback"`
	Rating          *int       `json:"rating" binding:"omitempty,min=1,max=5"`
}

// MatchScoreRequest asks for the match between a job and a candidate
// @Description Match score request
type MatchScoreRequest struct {
	JobID       uuid.UUID `json:"job_id" binding:"required"`
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
}

// MatchScoreResponse represents the match between a job and a candidate
// @Description Match score with matched and missing skills
type MatchScoreResponse struct {
	MatchScore      float64              `json:"match_score" example:"70"`
	MatchedSkills   []string             `json:"matched_skills"`
	MissingSkills   []string             `json:"missing_skills"`
	ExperienceMatch bool                 `json:"experience_match"`
	LocationMatch   bool                 `json:"location_match"`
	Breakdown       matching.MatchResult `json:"breakdown"`
}

// NewMatchScoreResponse flattens a match result
func NewMatchScoreResponse(result matching.MatchResult) MatchScoreResponse {
	return MatchScoreResponse{
		MatchScore:      result.OverallScore,
		MatchedSkills:   result.Skills.Matched,
		MissingSkills:   result.Skills.Missing,
		ExperienceMatch: result.Experience.MeetsRequirement,
		LocationMatch:   result.Location.IsMatch,
		Breakdown:       result,
	}
}

// ScreeningScoreRequest asks to score the screening answers of an application
// @Description Screening score request
type ScreeningScoreRequest struct {
	ApplicationID uuid.UUID `json:"application_id" binding:"required"`
}

// AnswerScoreEntry is the score of one screening answer. Error is set when the
// answer could not be scored.
type AnswerScoreEntry struct {
	AnswerID        string             `json:"answer_id,omitempty"`
	Question        string             `json:"question"`
	Answer          string             `json:"answer"`
	Score           float64            `json:"score" example:"6.5"`
	MatchedKeywords []string           `json:"matched_keywords"`
	Category        screening.Category `json:"category,omitempty" example:"technical"`
	Error           string             `json:"error,omitempty"`
}

// ScreeningScoreResponse represents screening scores for an application
// @Description Overall and per-answer screening scores
type ScreeningScoreResponse struct {
	OverallScore float64            `json:"overall_score" example:"65"`
	AnswerScores []AnswerScoreEntry `json:"answer_scores"`
}

// NewScreeningScoreResponse builds the response from batch outcomes
func NewScreeningScoreResponse(outcomes []screening.Outcome) ScreeningScoreResponse {
	entries := make([]AnswerScoreEntry, 0, len(outcomes))
	for _, o := range outcomes {
		entry := AnswerScoreEntry{
			AnswerID:        o.ID,
			Question:        o.Question,
			Answer:          o.Answer,
			Score:           o.Score(),
			MatchedKeywords: []string{},
		}
		if o.Failed() {
			entry.Error = o.Err.Error()
		} else {
			entry.MatchedKeywords = o.Result.MatchedKeywords
			entry.Category = o.Result.Category
		}
		entries = append(entries, entry)
	}

	return ScreeningScoreResponse{
		OverallScore: screening.OverallOutcomeScore(outcomes),
		AnswerScores: entries,
	}
}

// ResumeUploadResponse is returned after a candidate uploads a resume
// @Description Resume upload result
type ResumeUploadResponse struct {
	ResumeURL string               `json:"resume_url,omitempty" example:"https://storage.googleapis.com/bucket/resumes/id/1700000000.pdf"`
	Parsed    *resume.ParsedResume `json:"parsed"`
	Candidate *Candidate           `json:"candidate"`
	Message   string               `json:"message" example:"Resume uploaded successfully"`
}

// JobDetailResponse is a job with the caller's match when a candidate asks
// @Description Job posting with optional match for the requesting candidate
type JobDetailResponse struct {
	*Job
	Match *MatchScoreResponse `json:"match,omitempty"`
}
