package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/matching"
)

// Job statuses
const (
	JobStatusDraft     = "draft"
	JobStatusPublished = "published"
	JobStatusClosed    = "closed"
)

// Employment types
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// Job represents a job posting
// @Description Job posting
type Job struct {
	ID             uuid.UUID           `json:"id"`
	CompanyID      uuid.UUID           `json:"company_id"`
	Title          string              `json:"title" example:"Senior Go Engineer"`
	Description    string              `json:"description"`
	Location       *string             `json:"location" example:"Berlin"`
	RemoteType     matching.RemoteType `json:"remote_type" example:"hybrid"`
	EmploymentType string              `json:"employment_type" example:"full-time"`
	SkillsRequired *string             `json:"skills_required" example:"Go, PostgreSQL"`
	SalaryMin      *float64            `json:"salary_min" example:"60000"`
	SalaryMax      *float64            `json:"salary_max" example:"90000"`
	Currency       string              `json:"currency" example:"EUR"`
	ExperienceMin  int                 `json:"experience_min" example:"3"`
	ExperienceMax  *int                `json:"experience_max" example:"8"`
	Status         string              `json:"status" example:"published"`
	PostedBy       *uuid.UUID          `json:"posted_by"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Company        *Company            `json:"company,omitempty"`
}

// Requirements converts the job into matcher input
func (j *Job) Requirements() matching.JobRequirements {
	return matching.JobRequirements{
		SkillsRequired: deref(j.SkillsRequired),
		ExperienceMin:  j.ExperienceMin,
		ExperienceMax:  j.ExperienceMax,
		Location:       deref(j.Location),
		RemoteType:     j.RemoteType,
	}
}

// Profile converts the candidate into matcher input
func (c *Candidate) Profile() matching.CandidateProfile {
	return matching.CandidateProfile{
		SkillsText:      deref(c.SkillsText),
		ExperienceYears: c.ExperienceYears,
		Location:        deref(c.Location),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
