package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiringplatform/backend/models"
)

const companyColumns = `co.id, co.name, co.description, co.website, co.logo_url, co.industry,
	co.size, co.location, co.created_by, co.created_at, co.updated_at`

var companyUpdatable = map[string]bool{
	"name":        true,
	"description": true,
	"website":     true,
	"logo_url":    true,
	"industry":    true,
	"size":        true,
	"location":    true,
}

func companyDest(c *models.Company) []any {
	return []any{&c.ID, &c.Name, &c.Description, &c.Website, &c.LogoURL, &c.Industry,
		&c.Size, &c.Location, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt}
}

// CreateCompany inserts a company
func (p *PostgresClient) CreateCompany(ctx context.Context, company *models.Company) error {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO companies AS co (name, description, website, logo_url, industry, size, location, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+companyColumns,
		company.Name, company.Description, company.Website, company.LogoURL, company.Industry,
		company.Size, company.Location, company.CreatedBy,
	).Scan(companyDest(company)...)
	return translate(err, "create company")
}

// GetCompany retrieves a company by id
func (p *PostgresClient) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := p.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies co WHERE co.id = $1`, id).
		Scan(companyDest(&company)...)
	if err != nil {
		return nil, translate(err, "get company")
	}
	return &company, nil
}

// ListCompanies returns companies matching the name and industry filters, newest first
func (p *PostgresClient) ListCompanies(ctx context.Context, query models.CompanyListQuery) ([]models.Company, error) {
	var f filter
	if query.Name != "" {
		f.add(`co.name ILIKE ?`, ilike(query.Name))
	}
	if query.Industry != "" {
		f.add(`co.industry ILIKE ?`, ilike(query.Industry))
	}

	sql := `SELECT ` + companyColumns + ` FROM companies co` + f.where() +
		` ORDER BY co.created_at DESC` + f.page(query.Skip, query.Limit)

	rows, err := p.pool.Query(ctx, sql, f.args...)
	if err != nil {
		return nil, translate(err, "list companies")
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		var company models.Company
		if err := rows.Scan(companyDest(&company)...); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

// UpdateCompany applies a partial update keyed by column name
func (p *PostgresClient) UpdateCompany(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Company, error) {
	query, args, err := buildUpdate("companies AS co", changes, companyUpdatable, companyColumns)
	if err != nil {
		return nil, err
	}

	var company models.Company
	if err := p.pool.QueryRow(ctx, query, append(args, id)...).Scan(companyDest(&company)...); err != nil {
		return nil, translate(err, "update company")
	}
	return &company, nil
}

// DeleteCompany removes a company and, by cascade, its jobs
func (p *PostgresClient) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return translate(err, "delete company")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete company: %w", ErrNotFound)
	}
	return nil
}
