package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListJobs applies the caller-dependent view before querying: anonymous
// callers and applicants see active jobs unless they ask for another status;
// an authenticated recruiter sees their own jobs regardless of status.
func (u *jobUsecase) ListJobs(ctx context.Context, currentUser *domain.User, filter domain.JobFilter) ([]domain.Job, error) {
	if currentUser != nil && currentUser.Role == domain.RoleRecruiter {
		filter.RecruiterID = currentUser.ID
		filter.Status = ""
	} else if filter.Status == "" {
		filter.Status = domain.JobStatusActive
	}

	jobs, err := u.jobRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("Error fetching jobs", err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal("Error fetching job", err)
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, currentUser *domain.User, job *domain.Job) (*domain.Job, error) {
	job.RecruiterID = currentUser.ID
	// The recruiter's own company takes precedence over a company id in the
	// request body.
	if currentUser.CompanyID != nil {
		job.CompanyID = currentUser.CompanyID
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal("Error creating job", err)
	}

	// Re-read for the joined recruiter and company fields
	created, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return nil, apperror.Internal("Error creating job", err)
	}
	return created, nil
}

// UpdateJob loads the job first so a missing job is NotFound even for
// non-owners, then enforces ownership before mutating.
func (u *jobUsecase) UpdateJob(ctx context.Context, recruiterID int64, id int64, input *domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal("Error updating job", err)
	}

	if job.RecruiterID != recruiterID {
		return nil, apperror.Forbidden("You can only update your own jobs")
	}

	updated, err := u.jobRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal("Error updating job", err)
	}
	return updated, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, recruiterID int64, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal("Error deleting job", err)
	}

	if job.RecruiterID != recruiterID {
		return apperror.Forbidden("You can only delete your own jobs")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal("Error deleting job", err)
	}
	return nil
}
