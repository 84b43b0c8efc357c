package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
)

const applicationColumns = `a.id, a.job_id, a.candidate_id, a.status, a.match_score::float8,
	a.screening_score::float8, a.cover_letter, a.notes, a.created_at, a.updated_at`

var applicationUpdatable = map[string]bool{
	"status": true,
	"notes":  true,
}

func applicationDest(a *models.Application) []any {
	return []any{&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.MatchScore,
		&a.ScreeningScore, &a.CoverLetter, &a.Notes, &a.CreatedAt, &a.UpdatedAt}
}

// CreateApplication inserts an application. A second application of the same
// candidate to the same job fails with ErrAlreadyExists.
func (p *PostgresClient) CreateApplication(ctx context.Context, application *models.Application) error {
	if application.Status == "" {
		application.Status = models.ApplicationStatusApplied
	}

	err := p.pool.QueryRow(ctx, `
		INSERT INTO applications AS a (job_id, candidate_id, status, match_score, cover_letter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+applicationColumns,
		application.JobID, application.CandidateID, application.Status, application.MatchScore, application.CoverLetter,
	).Scan(applicationDest(application)...)
	return translate(err, "create application")
}

// GetApplication retrieves an application with its job and candidate
func (p *PostgresClient) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var (
		application models.Application
		job         models.Job
		candidate   models.Candidate
	)
	dest := applicationDest(&application)
	dest = append(dest, jobDest(&job)...)
	dest = append(dest, candidateDest(&candidate)...)

	err := p.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`, `+jobColumns+`, `+candidateColumns+`
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN candidates c ON c.id = a.candidate_id
		WHERE a.id = $1`, id,
	).Scan(dest...)
	if err != nil {
		return nil, translate(err, "get application")
	}

	application.Job = &job
	application.Candidate = &candidate
	return &application, nil
}

// ListApplicationsByCandidate returns a candidate's applications with job and
// company, newest first
func (p *PostgresClient) ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID, query models.ApplicationListQuery) ([]models.Application, error) {
	var f filter
	f.add(`a.candidate_id = ?`, candidateID)
	if query.Status != "" {
		f.add(`a.status = ?`, query.Status)
	}

	sql := `SELECT ` + applicationColumns + `, ` + jobColumns + `, ` + companyColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies co ON co.id = j.company_id` + f.where() +
		` ORDER BY a.created_at DESC` + f.page(query.Skip, query.Limit)

	rows, err := p.pool.Query(ctx, sql, f.args...)
	if err != nil {
		return nil, translate(err, "list applications")
	}
	defer rows.Close()

	applications := make([]models.Application, 0)
	for rows.Next() {
		var (
			application models.Application
			job         models.Job
			company     models.Company
		)
		dest := applicationDest(&application)
		dest = append(dest, jobDest(&job)...)
		dest = append(dest, companyDest(&company)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		job.Company = &company
		application.Job = &job
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

// ListApplicationsByJob returns a job's applications with candidate profiles,
// sorted by match score (default) or recency
func (p *PostgresClient) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID, query models.ApplicationListQuery) ([]models.Application, error) {
	var f filter
	f.add(`a.job_id = ?`, jobID)
	if query.Status != "" {
		f.add(`a.status = ?`, query.Status)
	}

	order := ` ORDER BY a.match_score DESC, a.created_at DESC`
	if query.SortBy == "created_at" {
		order = ` ORDER BY a.created_at DESC`
	}

	sql := `SELECT ` + applicationColumns + `, ` + candidateColumns + `
		FROM applications a
		JOIN candidates c ON c.id = a.candidate_id` + f.where() + order + f.page(query.Skip, query.Limit)

	rows, err := p.pool.Query(ctx, sql, f.args...)
	if err != nil {
		return nil, translate(err, "list applications")
	}
	defer rows.Close()

	applications := make([]models.Application, 0)
	for rows.Next() {
		var (
			application models.Application
			candidate   models.Candidate
		)
		if err := rows.Scan(append(applicationDest(&application), candidateDest(&candidate)...)...); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		application.Candidate = &candidate
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

// UpdateApplication applies a partial update keyed by column name
func (p *PostgresClient) UpdateApplication(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Application, error) {
	query, args, err := buildUpdate("applications AS a", changes, applicationUpdatable, applicationColumns)
	if err != nil {
		return nil, err
	}

	var application models.Application
	if err := p.pool.QueryRow(ctx, query, append(args, id)...).Scan(applicationDest(&application)...); err != nil {
		return nil, translate(err, "update application")
	}
	return &application, nil
}
