package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, website)
              VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Website,
	).Scan(&company.ID, &company.CreatedAt)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, name, description, website, created_at FROM companies WHERE id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Description, &company.Website, &company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, description, website, created_at FROM companies ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Description, &company.Website, &company.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Update(ctx context.Context, id int64, input *domain.CompanyUpdate) (*domain.Company, error) {
	if input.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var set []string
	var args []interface{}

	appendField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		appendField("name", *input.Name)
	}
	if input.Description != nil {
		appendField("description", *input.Description)
	}
	if input.Website != nil {
		appendField("website", *input.Website)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE companies SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, id)
}
