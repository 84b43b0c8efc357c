package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
)

const interviewColumns = `i.id, i.application_id, i.scheduled_at, i.duration_minutes, i.meeting_link,
	i.interview_type, i.interviewer_id, i.status, i.notes, i.feedback, i.rating, i.created_at, i.updated_at`

var interviewUpdatable = map[string]bool{
	"scheduled_at":     true,
	"duration_minutes": true,
	"meeting_link":     true,
	"status":           true,
	"notes":            true,
	"feedback":         true,
	"rating":           true,
}

func interviewDest(i *models.Interview) []any {
	return []any{&i.ID, &i.ApplicationID, &i.ScheduledAt, &i.DurationMinutes, &i.MeetingLink,
		&i.InterviewType, &i.InterviewerID, &i.Status, &i.Notes, &i.Feedback, &i.Rating, &i.CreatedAt, &i.UpdatedAt}
}

// CreateInterview schedules an interview
func (p *PostgresClient) CreateInterview(ctx context.Context, interview *models.Interview) error {
	if interview.DurationMinutes == 0 {
		interview.DurationMinutes = 60
	}
	if interview.InterviewType == "" {
		interview.InterviewType = "technical"
	}
	if interview.Status == "" {
		interview.Status = models.InterviewStatusScheduled
	}

	err := p.pool.QueryRow(ctx, `
		INSERT INTO interviews AS i (application_id, scheduled_at, duration_minutes, meeting_link,
			interview_type, interviewer_id, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+interviewColumns,
		interview.ApplicationID, interview.ScheduledAt, interview.DurationMinutes, interview.MeetingLink,
		interview.InterviewType, interview.InterviewerID, interview.Status, interview.Notes,
	).Scan(interviewDest(interview)...)
	return translate(err, "create interview")
}

// GetInterview retrieves an interview by id
func (p *PostgresClient) GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	err := p.pool.QueryRow(ctx, `SELECT `+interviewColumns+` FROM interviews i WHERE i.id = $1`, id).
		Scan(interviewDest(&interview)...)
	if err != nil {
		return nil, translate(err, "get interview")
	}
	return &interview, nil
}

// ListInterviews returns an application's interviews in schedule order
func (p *PostgresClient) ListInterviews(ctx context.Context, applicationID uuid.UUID) ([]models.Interview, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+interviewColumns+`
		FROM interviews i
		WHERE i.application_id = $1
		ORDER BY i.scheduled_at`, applicationID)
	if err != nil {
		return nil, translate(err, "list interviews")
	}
	defer rows.Close()

	interviews := make([]models.Interview, 0)
	for rows.Next() {
		var interview models.Interview
		if err := rows.Scan(interviewDest(&interview)...); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, interview)
	}
	return interviews, rows.Err()
}

// UpdateInterview applies a partial update keyed by column name
func (p *PostgresClient) UpdateInterview(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Interview, error) {
	query, args, err := buildUpdate("interviews AS i", changes, interviewUpdatable, interviewColumns)
	if err != nil {
		return nil, err
	}

	var interview models.Interview
	if err := p.pool.QueryRow(ctx, query, append(args, id)...).Scan(interviewDest(&interview)...); err != nil {
		return nil, translate(err, "update interview")
	}
	return &interview, nil
}
