package domain

import (
	"context"
	"errors"
	"time"
)

// Application status constants. Any value of the set is accepted on every
// status update; no transition graph beyond set membership.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusAccepted    = "accepted"
)

// ApplicationStatuses lists the valid statuses in display order.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

func ValidApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var ErrAlreadyApplied = errors.New("application already exists for this job and applicant")

// Application links an applicant to a job. At most one exists per
// (job_id, applicant_id) pair.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	// Joined data for list responses
	JobTitle           *string `json:"job_title,omitempty"`
	JobLocation        *string `json:"job_location,omitempty"`
	JobEmploymentType  *string `json:"employment_type,omitempty"`
	CompanyName        *string `json:"company_name,omitempty"`
	ApplicantFirstName *string `json:"applicant_first_name,omitempty"`
	ApplicantLastName  *string `json:"applicant_last_name,omitempty"`
	ApplicantEmail     *string `json:"applicant_email,omitempty"`
	ApplicantPhone     *string `json:"applicant_phone,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

type ApplicationUsecase interface {
	// Applicant operations
	ApplyToJob(ctx context.Context, applicantID, jobID int64, coverLetter, resumeURL *string) (*Application, error)
	GetMyApplications(ctx context.Context, applicantID int64) ([]Application, error)

	// Recruiter operations
	ListApplicantsForJob(ctx context.Context, recruiterID, jobID int64) (*Job, []Application, error)
	UpdateApplicationStatus(ctx context.Context, recruiterID, applicationID int64, status string) (*Application, error)
}
