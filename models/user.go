package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the account type of a user
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User represents a user account
// @Description User account information
type User struct {
	ID           uuid.UUID `json:"id" example:"6f1c1a52-4a39-4d3c-9f0e-2b7d9b0c1e11"`
	Email        string    `json:"email" example:"user@example.com"`
	PasswordHash string    `json:"-"` // Hashed password, never sent to client
	FullName     string    `json:"full_name" example:"John Doe"`
	Role         Role      `json:"role" example:"candidate"`
	Provider     string    `json:"provider" example:"email"` // "email" or "google"
	GoogleID     *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Candidate is the profile of a job seeker. Empty optional fields are null.
// @Description Candidate profile
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Headline        *string   `json:"headline" example:"Backend engineer"`
	ExperienceYears int       `json:"experience_years" example:"5"`
	Location        *string   `json:"location" example:"Berlin"`
	SkillsText      *string   `json:"skills_text" example:"Go, PostgreSQL, Docker"`
	ResumeURL       *string   `json:"resume_url"`
	Phone           *string   `json:"phone" example:"+49 30 1234567"`
	LinkedinURL     *string   `json:"linkedin_url"`
	GithubURL       *string   `json:"github_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Company represents a hiring company
// @Description Company profile
type Company struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name" example:"Acme"`
	Description *string    `json:"description"`
	Website     *string    `json:"website" example:"https://acme.example"`
	LogoURL     *string    `json:"logo_url"`
	Industry    *string    `json:"industry" example:"Software"`
	Size        *string    `json:"size" example:"51-200"`
	Location    *string    `json:"location" example:"Berlin"`
	CreatedBy   *uuid.UUID `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
