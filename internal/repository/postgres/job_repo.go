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

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.EmploymentType == "" {
		job.EmploymentType = domain.EmploymentFullTime
	}
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}

	query := `INSERT INTO jobs (title, description, requirements, location, salary_min, salary_max, employment_type, status, recruiter_id, company_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Requirements, job.Location,
		job.SalaryMin, job.SalaryMax, job.EmploymentType, job.Status,
		job.RecruiterID, job.CompanyID,
	).Scan(&job.ID, &job.CreatedAt)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT j.id, j.title, j.description, j.requirements, j.location,
		       j.salary_min, j.salary_max, j.employment_type, j.status,
		       j.recruiter_id, j.company_id, j.created_at,
		       u.first_name AS recruiter_first_name,
		       u.last_name AS recruiter_last_name,
		       u.email AS recruiter_email,
		       c.name AS company_name
		FROM jobs j
		LEFT JOIN users u ON j.recruiter_id = u.id
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Requirements, &job.Location,
		&job.SalaryMin, &job.SalaryMax, &job.EmploymentType, &job.Status,
		&job.RecruiterID, &job.CompanyID, &job.CreatedAt,
		&job.RecruiterFirstName, &job.RecruiterLastName, &job.RecruiterEmail,
		&job.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	where, args := buildJobFilter(filter)

	query := `
		SELECT j.id, j.title, j.description, j.requirements, j.location,
		       j.salary_min, j.salary_max, j.employment_type, j.status,
		       j.recruiter_id, j.company_id, j.created_at,
		       u.first_name AS recruiter_first_name,
		       u.last_name AS recruiter_last_name,
		       c.name AS company_name
		FROM jobs j
		LEFT JOIN users u ON j.recruiter_id = u.id
		LEFT JOIN companies c ON j.company_id = c.id
		` + where

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Requirements, &job.Location,
			&job.SalaryMin, &job.SalaryMax, &job.EmploymentType, &job.Status,
			&job.RecruiterID, &job.CompanyID, &job.CreatedAt,
			&job.RecruiterFirstName, &job.RecruiterLastName, &job.CompanyName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// buildJobFilter turns the optional filters into a WHERE/ORDER BY/LIMIT tail
// with ordinal placeholders. Set filters compose conjunctively.
func buildJobFilter(filter domain.JobFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("j.status = $%d", len(args)))
	}
	if filter.RecruiterID != 0 {
		args = append(args, filter.RecruiterID)
		conditions = append(conditions, fmt.Sprintf("j.recruiter_id = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.EmploymentType != "" {
		args = append(args, filter.EmploymentType)
		conditions = append(conditions, fmt.Sprintf("j.employment_type = $%d", len(args)))
	}

	var sb strings.Builder
	if len(conditions) > 0 {
		sb.WriteString("WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY j.created_at DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return sb.String(), args
}

// Update mutates only the allow-listed fields present in the input and
// returns the refreshed joined row. An empty input returns the current row.
func (r *jobRepo) Update(ctx context.Context, id int64, input *domain.JobUpdate) (*domain.Job, error) {
	if input.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set, args := buildJobUpdate(input)

	args = append(args, id)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func buildJobUpdate(input *domain.JobUpdate) ([]string, []interface{}) {
	var set []string
	var args []interface{}

	appendField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Title != nil {
		appendField("title", *input.Title)
	}
	if input.Description != nil {
		appendField("description", *input.Description)
	}
	if input.Requirements != nil {
		appendField("requirements", *input.Requirements)
	}
	if input.Location != nil {
		appendField("location", *input.Location)
	}
	if input.SalaryMin != nil {
		appendField("salary_min", *input.SalaryMin)
	}
	if input.SalaryMax != nil {
		appendField("salary_max", *input.SalaryMax)
	}
	if input.EmploymentType != nil {
		appendField("employment_type", *input.EmploymentType)
	}
	if input.Status != nil {
		appendField("status", *input.Status)
	}

	return set, args
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
