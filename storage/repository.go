package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
)

// UserRepository persists user accounts
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	LinkGoogleAccount(ctx context.Context, userID uuid.UUID, googleID string) error
}

// CandidateRepository persists candidate profiles
type CandidateRepository interface {
	CreateCandidate(ctx context.Context, candidate *models.Candidate) error
	GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	GetCandidateByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, error)
	UpdateCandidate(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Candidate, error)
}

// CompanyRepository persists companies
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListCompanies(ctx context.Context, query models.CompanyListQuery) ([]models.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

// JobFilter selects jobs. Zero values do not filter.
type JobFilter struct {
	CompanyID  *uuid.UUID
	Status     string
	Location   string
	RemoteType string
	Skills     []string // any of
	Title      string
	Skip       int
	Limit      int
}

// JobRepository persists job postings
type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository persists applications
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application *models.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID, query models.ApplicationListQuery) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID uuid.UUID, query models.ApplicationListQuery) ([]models.Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Application, error)
}

// AnswerScore is the persisted score of one screening answer
type AnswerScore struct {
	AnswerID        uuid.UUID
	Score           float64
	KeywordsMatched []string
}

// ScreeningRepository persists screening answers and their scores
type ScreeningRepository interface {
	CreateScreeningAnswers(ctx context.Context, applicationID uuid.UUID, answers []models.ScreeningAnswerInput) ([]models.ScreeningAnswer, error)
	ListScreeningAnswers(ctx context.Context, applicationID uuid.UUID) ([]models.ScreeningAnswer, error)
	SaveScreeningScores(ctx context.Context, applicationID uuid.UUID, overall float64, scores []AnswerScore) error
}

// InterviewRepository persists interviews
type InterviewRepository interface {
	CreateInterview(ctx context.Context, interview *models.Interview) error
	GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	ListInterviews(ctx context.Context, applicationID uuid.UUID) ([]models.Interview, error)
	UpdateInterview(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Interview, error)
}

// Repository is the full persistence layer
type Repository interface {
	UserRepository
	CandidateRepository
	CompanyRepository
	JobRepository
	ApplicationRepository
	ScreeningRepository
	InterviewRepository

	Ping(ctx context.Context) error
	Close() error
}

var _ Repository = (*PostgresClient)(nil)
