package postgres

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The (job_id, applicant_id) unique
// constraint is the authoritative duplicate guard; its violation maps to
// the same error the usecase pre-check raises, so concurrent duplicates
// yield exactly one success.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, cover_letter, resume_url, status)
              VALUES ($1, $2, $3, $4, $5) RETURNING id, applied_at`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.CoverLetter, app.ResumeURL, app.Status,
	).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// GetByID retrieves an application with joined job title and applicant data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume_url,
		       a.status, a.applied_at,
		       j.title AS job_title,
		       u.first_name AS applicant_first_name,
		       u.last_name AS applicant_last_name,
		       u.email AS applicant_email
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.applicant_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.ResumeURL,
		&app.Status, &app.AppliedAt,
		&app.JobTitle, &app.ApplicantFirstName, &app.ApplicantLastName, &app.ApplicantEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	query := `SELECT id, job_id, applicant_id, cover_letter, resume_url, status, applied_at
              FROM applications WHERE job_id = $1 AND applicant_id = $2`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.ResumeURL,
		&app.Status, &app.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves a job's applications with applicant contact fields,
// newest first
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume_url,
		       a.status, a.applied_at,
		       u.first_name AS applicant_first_name,
		       u.last_name AS applicant_last_name,
		       u.email AS applicant_email,
		       u.phone AS applicant_phone
		FROM applications a
		JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.ResumeURL,
			&app.Status, &app.AppliedAt,
			&app.ApplicantFirstName, &app.ApplicantLastName, &app.ApplicantEmail,
			&app.ApplicantPhone,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByApplicantID retrieves an applicant's applications with job and
// company summary fields, newest first
func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume_url,
		       a.status, a.applied_at,
		       j.title AS job_title,
		       j.location AS job_location,
		       j.employment_type,
		       c.name AS company_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.ResumeURL,
			&app.Status, &app.AppliedAt,
			&app.JobTitle, &app.JobLocation, &app.JobEmploymentType, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus sets the status and returns the refreshed joined row
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	result, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}
