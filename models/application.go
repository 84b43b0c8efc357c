package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusScreening   = "screening"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterview   = "interview"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusOffer       = "offer"
	ApplicationStatusAccepted    = "accepted"
	ApplicationStatusDeclined    = "declined"
)

// Interview statuses
const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCancelled   = "cancelled"
	InterviewStatusRescheduled = "rescheduled"
)

// Application is a candidate's application to a job
// @Description Job application with match and screening scores
type Application struct {
	ID             uuid.UUID  `json:"id"`
	JobID          uuid.UUID  `json:"job_id"`
	CandidateID    uuid.UUID  `json:"candidate_id"`
	Status         string     `json:"status" example:"applied"`
	MatchScore     float64    `json:"match_score" example:"72.5"`
	ScreeningScore *float64   `json:"screening_score" example:"64.2"`
	CoverLetter    *string    `json:"cover_letter"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Job            *Job       `json:"job,omitempty"`
	Candidate      *Candidate `json:"candidate,omitempty"`
}

// ScreeningAnswer is a candidate's answer to a screening question
// @Description Screening question answer with its keyword score
type ScreeningAnswer struct {
	ID              uuid.UUID `json:"id"`
	ApplicationID   uuid.UUID `json:"application_id"`
	QuestionText    string    `json:"question_text" example:"How would you improve database performance?"`
	AnswerText      string    `json:"answer_text"`
	AIScore         *float64  `json:"ai_score" example:"6.5"`
	KeywordsMatched []string  `json:"keywords_matched"`
	CreatedAt       time.Time `json:"created_at"`
}

// Interview is a scheduled interview for an application
// @Description Interview schedule and feedback
type Interview struct {
	ID              uuid.UUID  `json:"id"`
	ApplicationID   uuid.UUID  `json:"application_id"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes" example:"60"`
	MeetingLink     *string    `json:"meeting_link"`
	InterviewType   string     `json:"interview_type" example:"technical"`
	InterviewerID   *uuid.UUID `json:"interviewer_id"`
	Status          string     `json:"status" example:"scheduled"`
	Notes           *string    `json:"notes"`
	Feedback        *string    `json:"feedback"`
	Rating          *int       `json:"rating" example:"4"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
