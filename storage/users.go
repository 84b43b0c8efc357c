package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hiringplatform/backend/models"
)

const userColumns = `u.id, u.email, u.password_hash, u.full_name, u.role, u.provider, u.google_id, u.created_at, u.updated_at`

func userDest(u *models.User) []any {
	return []any{&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.Provider, &u.GoogleID, &u.CreatedAt, &u.UpdatedAt}
}

// CreateUser inserts a user. Candidate accounts get an empty profile in the
// same transaction.
func (p *PostgresClient) CreateUser(ctx context.Context, user *models.User) error {
	if user.Provider == "" {
		user.Provider = models.ProviderEmail
	}

	return p.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users AS u (email, password_hash, full_name, role, provider, google_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+userColumns,
			user.Email, user.PasswordHash, user.FullName, user.Role, user.Provider, user.GoogleID,
		).Scan(userDest(user)...)
		if err != nil {
			return translate(err, "create user")
		}

		if user.Role == models.RoleCandidate {
			if _, err := tx.Exec(ctx, `INSERT INTO candidates (user_id) VALUES ($1)`, user.ID); err != nil {
				return translate(err, "create candidate profile")
			}
		}
		return nil
	})
}

// GetUserByID retrieves a user by id
func (p *PostgresClient) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return p.getUser(ctx, `u.id = $1`, id)
}

// GetUserByEmail retrieves a user by email
func (p *PostgresClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.getUser(ctx, `u.email = $1`, email)
}

// GetUserByGoogleID retrieves a user by Google ID
func (p *PostgresClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return p.getUser(ctx, `u.google_id = $1`, googleID)
}

func (p *PostgresClient) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var user models.User
	err := p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE `+where, arg).Scan(userDest(&user)...)
	if err != nil {
		return nil, translate(err, "get user")
	}
	return &user, nil
}

// LinkGoogleAccount attaches a Google ID to an existing user
func (p *PostgresClient) LinkGoogleAccount(ctx context.Context, userID uuid.UUID, googleID string) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE users SET google_id = $1, updated_at = NOW() WHERE id = $2`, googleID, userID)
	if err != nil {
		return translate(err, "link google account")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link google account: %w", ErrNotFound)
	}
	return nil
}
