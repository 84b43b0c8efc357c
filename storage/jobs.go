package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
)

const jobColumns = `j.id, j.company_id, j.title, j.description, j.location, j.remote_type, j.employment_type,
	j.skills_required, j.salary_min::float8, j.salary_max::float8, j.currency, j.experience_min,
	j.experience_max, j.status, j.posted_by, j.created_at, j.updated_at`

var jobUpdatable = map[string]bool{
	"title":           true,
	"description":     true,
	"location":        true,
	"remote_type":     true,
	"employment_type": true,
	"skills_required": true,
	"salary_min":      true,
	"salary_max":      true,
	"currency":        true,
	"experience_min":  true,
	"experience_max":  true,
	"status":          true,
}

func jobDest(j *models.Job) []any {
	return []any{&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Location, &j.RemoteType, &j.EmploymentType,
		&j.SkillsRequired, &j.SalaryMin, &j.SalaryMax, &j.Currency, &j.ExperienceMin,
		&j.ExperienceMax, &j.Status, &j.PostedBy, &j.CreatedAt, &j.UpdatedAt}
}

// CreateJob inserts a job posting
func (p *PostgresClient) CreateJob(ctx context.Context, job *models.Job) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO jobs AS j (company_id, title, description, location, remote_type, employment_type,
			skills_required, salary_min, salary_max, currency, experience_min, experience_max, status, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+jobColumns,
		job.CompanyID, job.Title, job.Description, job.Location, string(job.RemoteType), job.EmploymentType,
		job.SkillsRequired, job.SalaryMin, job.SalaryMax, job.Currency, job.ExperienceMin, job.ExperienceMax,
		job.Status, job.PostedBy,
	).Scan(jobDest(job)...)
	return translate(err, "create job")
}

// GetJob retrieves a job with its company
func (p *PostgresClient) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var (
		job     models.Job
		company models.Company
	)
	dest := append(jobDest(&job), companyDest(&company)...)

	err := p.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`, `+companyColumns+`
		FROM jobs j
		JOIN companies co ON co.id = j.company_id
		WHERE j.id = $1`, id,
	).Scan(dest...)
	if err != nil {
		return nil, translate(err, "get job")
	}

	job.Company = &company
	return &job, nil
}

// ListJobs returns jobs matching filter with their company, newest first
func (p *PostgresClient) ListJobs(ctx context.Context, jf JobFilter) ([]models.Job, error) {
	var f filter
	if jf.CompanyID != nil {
		f.add(`j.company_id = ?`, *jf.CompanyID)
	}
	if jf.Status != "" {
		f.add(`j.status = ?`, jf.Status)
	}
	if jf.Location != "" {
		f.add(`j.location ILIKE ?`, ilike(jf.Location))
	}
	if jf.RemoteType != "" {
		f.add(`j.remote_type = ?`, jf.RemoteType)
	}
	if jf.Title != "" {
		f.add(`j.title ILIKE ?`, ilike(jf.Title))
	}
	if len(jf.Skills) > 0 {
		patterns := make([]string, 0, len(jf.Skills))
		for _, skill := range jf.Skills {
			patterns = append(patterns, ilike(skill))
		}
		f.add(`j.skills_required ILIKE ANY(?)`, patterns)
	}

	limit := jf.Limit
	if limit <= 0 {
		limit = 20
	}

	sql := `SELECT ` + jobColumns + `, ` + companyColumns + `
		FROM jobs j
		JOIN companies co ON co.id = j.company_id` + f.where() +
		` ORDER BY j.created_at DESC` + f.page(jf.Skip, limit)

	rows, err := p.pool.Query(ctx, sql, f.args...)
	if err != nil {
		return nil, translate(err, "list jobs")
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		var (
			job     models.Job
			company models.Company
		)
		if err := rows.Scan(append(jobDest(&job), companyDest(&company)...)...); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		job.Company = &company
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// UpdateJob applies a partial update keyed by column name
func (p *PostgresClient) UpdateJob(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Job, error) {
	query, args, err := buildUpdate("jobs AS j", changes, jobUpdatable, jobColumns)
	if err != nil {
		return nil, err
	}

	var job models.Job
	if err := p.pool.QueryRow(ctx, query, append(args, id)...).Scan(jobDest(&job)...); err != nil {
		return nil, translate(err, "update job")
	}
	return &job, nil
}

// DeleteJob removes a job and, by cascade, its applications
func (p *PostgresClient) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return translate(err, "delete job")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete job: %w", ErrNotFound)
	}
	return nil
}

// SplitSkills parses a comma-separated skills query parameter
func SplitSkills(raw string) []string {
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
