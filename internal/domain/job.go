package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job statuses and employment types
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"

	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   *string   `json:"requirements,omitempty"`
	Location       *string   `json:"location,omitempty"`
	SalaryMin      *float64  `json:"salary_min,omitempty"`
	SalaryMax      *float64  `json:"salary_max,omitempty"`
	EmploymentType string    `json:"employment_type"`
	Status         string    `json:"status"`
	RecruiterID    int64     `json:"recruiter_id"`
	CompanyID      *int64    `json:"company_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Joined data
	RecruiterFirstName *string `json:"recruiter_first_name,omitempty"`
	RecruiterLastName  *string `json:"recruiter_last_name,omitempty"`
	RecruiterEmail     *string `json:"recruiter_email,omitempty"`
	CompanyName        *string `json:"company_name,omitempty"`
}

// JobFilter holds the independently optional listing filters. Zero values
// mean "not set"; set filters compose conjunctively.
type JobFilter struct {
	Status         string
	RecruiterID    int64
	Location       string // substring match
	EmploymentType string
	Limit          int
	Offset         int
}

// JobUpdate is the allow-list of mutable job fields. Nil fields stay
// untouched; recruiter_id and company_id are deliberately absent.
type JobUpdate struct {
	Title          *string
	Description    *string
	Requirements   *string
	Location       *string
	SalaryMin      *float64
	SalaryMax      *float64
	EmploymentType *string
	Status         *string
}

func (j *JobUpdate) IsEmpty() bool {
	return j.Title == nil && j.Description == nil && j.Requirements == nil &&
		j.Location == nil && j.SalaryMin == nil && j.SalaryMax == nil &&
		j.EmploymentType == nil && j.Status == nil
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
	Update(ctx context.Context, id int64, input *JobUpdate) (*Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	// ListJobs applies the anonymous/recruiter view rules before delegating
	// to the repository. currentUser may be nil.
	ListJobs(ctx context.Context, currentUser *User, filter JobFilter) ([]Job, error)
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, currentUser *User, job *Job) (*Job, error)
	UpdateJob(ctx context.Context, recruiterID int64, id int64, input *JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, recruiterID int64, id int64) error
}
