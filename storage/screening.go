package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hiringplatform/backend/models"
)

const screeningAnswerColumns = `s.id, s.application_id, s.question_text, s.answer_text,
	s.ai_score::float8, s.keywords_matched, s.created_at`

func screeningAnswerDest(s *models.ScreeningAnswer) []any {
	return []any{&s.ID, &s.ApplicationID, &s.QuestionText, &s.AnswerText,
		&s.AIScore, &s.KeywordsMatched, &s.CreatedAt}
}

// CreateScreeningAnswers stores all answers of a submission atomically
func (p *PostgresClient) CreateScreeningAnswers(ctx context.Context, applicationID uuid.UUID, answers []models.ScreeningAnswerInput) ([]models.ScreeningAnswer, error) {
	saved := make([]models.ScreeningAnswer, len(answers))

	err := p.withTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, answer := range answers {
			batch.Queue(`
				INSERT INTO screening_answers AS s (application_id, question_text, answer_text)
				VALUES ($1, $2, $3)
				RETURNING `+screeningAnswerColumns,
				applicationID, answer.QuestionText, answer.AnswerText)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range answers {
			if err := results.QueryRow().Scan(screeningAnswerDest(&saved[i])...); err != nil {
				results.Close() //nolint:errcheck
				return translate(err, "create screening answer")
			}
		}
		return results.Close()
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListScreeningAnswers returns an application's answers in submission order
func (p *PostgresClient) ListScreeningAnswers(ctx context.Context, applicationID uuid.UUID) ([]models.ScreeningAnswer, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT `+screeningAnswerColumns+`
		FROM screening_answers s
		WHERE s.application_id = $1
		ORDER BY s.created_at, s.id`, applicationID)
	if err != nil {
		return nil, translate(err, "list screening answers")
	}
	defer rows.Close()

	answers := make([]models.ScreeningAnswer, 0)
	for rows.Next() {
		var answer models.ScreeningAnswer
		if err := rows.Scan(screeningAnswerDest(&answer)...); err != nil {
			return nil, fmt.Errorf("failed to scan screening answer: %w", err)
		}
		answers = append(answers, answer)
	}
	return answers, rows.Err()
}

// SaveScreeningScores writes per-answer scores and the overall screening score
// in one transaction
func (p *PostgresClient) SaveScreeningScores(ctx context.Context, applicationID uuid.UUID, overall float64, scores []AnswerScore) error {
	return p.withTx(ctx, func(tx pgx.Tx) error {
		for _, score := range scores {
			keywords := score.KeywordsMatched
			if keywords == nil {
				keywords = []string{}
			}
			_, err := tx.Exec(ctx, `
				UPDATE screening_answers SET ai_score = $1, keywords_matched = $2
				WHERE id = $3 AND application_id = $4`,
				score.Score, keywords, score.AnswerID, applicationID)
			if err != nil {
				return translate(err, "save answer score")
			}
		}

		tag, err := tx.Exec(ctx,
			`UPDATE applications SET screening_score = $1, updated_at = NOW() WHERE id = $2`,
			overall, applicationID)
		if err != nil {
			return translate(err, "save screening score")
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("save screening score: %w", ErrNotFound)
		}
		return nil
	})
}
