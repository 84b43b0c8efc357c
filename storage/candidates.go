package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
)

const candidateColumns = `c.id, c.user_id, c.headline, c.experience_years, c.location, c.skills_text,
	c.resume_url, c.phone, c.linkedin_url, c.github_url, c.created_at, c.updated_at`

var candidateUpdatable = map[string]bool{
	"headline":         true,
	"experience_years": true,
	"location":         true,
	"skills_text":      true,
	"resume_url":       true,
	"phone":            true,
	"linkedin_url":     true,
	"github_url":       true,
}

func candidateDest(c *models.Candidate) []any {
	return []any{&c.ID, &c.UserID, &c.Headline, &c.ExperienceYears, &c.Location, &c.SkillsText,
		&c.ResumeURL, &c.Phone, &c.LinkedinURL, &c.GithubURL, &c.CreatedAt, &c.UpdatedAt}
}

// CreateCandidate inserts a candidate profile
func (p *PostgresClient) CreateCandidate(ctx context.Context, candidate *models.Candidate) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO candidates AS c (user_id, headline, experience_years, location, skills_text,
			resume_url, phone, linkedin_url, github_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+candidateColumns,
		candidate.UserID, candidate.Headline, candidate.ExperienceYears, candidate.Location,
		candidate.SkillsText, candidate.ResumeURL, candidate.Phone, candidate.LinkedinURL, candidate.GithubURL,
	).Scan(candidateDest(candidate)...)
	return translate(err, "create candidate")
}

// GetCandidate retrieves a candidate profile by id
func (p *PostgresClient) GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	return p.getCandidate(ctx, `c.id = $1`, id)
}

// GetCandidateByUserID retrieves the candidate profile owned by a user
func (p *PostgresClient) GetCandidateByUserID(ctx context.Context, userID uuid.UUID) (*models.Candidate, error) {
	return p.getCandidate(ctx, `c.user_id = $1`, userID)
}

func (p *PostgresClient) getCandidate(ctx context.Context, where string, arg any) (*models.Candidate, error) {
	var candidate models.Candidate
	err := p.pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates c WHERE `+where, arg).
		Scan(candidateDest(&candidate)...)
	if err != nil {
		return nil, translate(err, "get candidate")
	}
	return &candidate, nil
}

// UpdateCandidate applies a partial update keyed by column name
func (p *PostgresClient) UpdateCandidate(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Candidate, error) {
	query, args, err := buildUpdate("candidates AS c", changes, candidateUpdatable, candidateColumns)
	if err != nil {
		return nil, err
	}

	var candidate models.Candidate
	if err := p.pool.QueryRow(ctx, query, append(args, id)...).Scan(candidateDest(&candidate)...); err != nil {
		return nil, translate(err, "update candidate")
	}
	return &candidate, nil
}
