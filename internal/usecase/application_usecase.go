package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// ApplyToJob lets an applicant apply to an active job. The duplicate
// pre-check gives a clean error message on the common path; the unique
// constraint in the store closes the remaining race.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, applicantID, jobID int64, coverLetter, resumeURL *string) (*domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal("Error submitting application", err)
	}

	if job.Status != domain.JobStatusActive {
		return nil, apperror.Conflict("This job is not currently accepting applications")
	}

	_, err = uc.applicationRepo.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err == nil {
		return nil, apperror.Conflict("You have already applied for this job")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal("Error submitting application", err)
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: coverLetter,
		ResumeURL:   resumeURL,
		Status:      domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
		return nil, apperror.Internal("Error submitting application", err)
	}

	// Re-read for the joined job and applicant fields
	created, err := uc.applicationRepo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, apperror.Internal("Error submitting application", err)
	}
	return created, nil
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	applications, err := uc.applicationRepo.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, apperror.Internal("Error fetching applications", err)
	}
	return applications, nil
}

// ListApplicantsForJob returns a job with its applications. Existence is
// checked before ownership, so a missing job is NotFound for everyone.
func (uc *applicationUsecase) ListApplicantsForJob(ctx context.Context, recruiterID, jobID int64) (*domain.Job, []domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Job not found")
		}
		return nil, nil, apperror.Internal("Error fetching applicants", err)
	}

	if job.RecruiterID != recruiterID {
		return nil, nil, apperror.Forbidden("You can only view applicants for your own jobs")
	}

	applications, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, nil, apperror.Internal("Error fetching applicants", err)
	}
	return job, applications, nil
}

// UpdateApplicationStatus accepts any status in the fixed set; there is no
// transition graph. Only the recruiter owning the parent job may update.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, recruiterID, applicationID int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status. Must be one of: " + strings.Join(domain.ApplicationStatuses, ", "))
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal("Error updating application status", err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal("Error updating application status", err)
	}

	if job.RecruiterID != recruiterID {
		return nil, apperror.Forbidden("You can only update applications for your own jobs")
	}

	updated, err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal("Error updating application status", err)
	}
	return updated, nil
}
