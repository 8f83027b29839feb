package usecase

import (
	"context"
	"net/http"
	"testing"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplyToJobSuccess(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, Status: domain.JobStatusActive}, nil)
	appRepo.On("GetByJobAndApplicant", mock.Anything, int64(30), int64(2)).Return(nil, domain.ErrNotFound)
	appRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
		return a.JobID == 30 && a.ApplicantID == 2 && a.Status == domain.ApplicationStatusPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Application).ID = 40
	}).Return(nil)
	appRepo.On("GetByID", mock.Anything, int64(40)).Return(&domain.Application{ID: 40, JobID: 30, ApplicantID: 2}, nil)

	app, err := uc.ApplyToJob(context.Background(), 2, 30, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(40), app.ID)
	appRepo.AssertExpectations(t)
}

func TestApplyToJobMissingJob(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := uc.ApplyToJob(context.Background(), 2, 99, nil, nil)
	assertAppError(t, err, http.StatusNotFound, "Job not found")
	appRepo.AssertNotCalled(t, "Create")
}

func TestApplyToJobClosedJob(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, Status: domain.JobStatusClosed}, nil)

	_, err := uc.ApplyToJob(context.Background(), 2, 30, nil, nil)
	assertAppError(t, err, http.StatusBadRequest, "This job is not currently accepting applications")
	appRepo.AssertNotCalled(t, "Create")
}

func TestApplyToJobDuplicatePreCheck(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, Status: domain.JobStatusActive}, nil)
	appRepo.On("GetByJobAndApplicant", mock.Anything, int64(30), int64(2)).
		Return(&domain.Application{ID: 40}, nil)

	_, err := uc.ApplyToJob(context.Background(), 2, 30, nil, nil)
	assertAppError(t, err, http.StatusBadRequest, "You have already applied for this job")
	appRepo.AssertNotCalled(t, "Create")
}

func TestApplyToJobDuplicateConstraintRace(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, Status: domain.JobStatusActive}, nil)
	appRepo.On("GetByJobAndApplicant", mock.Anything, int64(30), int64(2)).Return(nil, domain.ErrNotFound)
	appRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyApplied)

	_, err := uc.ApplyToJob(context.Background(), 2, 30, nil, nil)
	assertAppError(t, err, http.StatusBadRequest, "You have already applied for this job")
}

func TestListApplicantsMissingBeforeOwnership(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, _, err := uc.ListApplicantsForJob(context.Background(), 7, 99)
	assertAppError(t, err, http.StatusNotFound, "Job not found")
}

func TestListApplicantsNotOwner(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, RecruiterID: 7}, nil)

	_, _, err := uc.ListApplicantsForJob(context.Background(), 8, 30)
	assertAppError(t, err, http.StatusForbidden, "You can only view applicants for your own jobs")
	appRepo.AssertNotCalled(t, "GetByJobID")
}

func TestListApplicantsSuccess(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, Title: "Backend Engineer", RecruiterID: 7}, nil)
	appRepo.On("GetByJobID", mock.Anything, int64(30)).Return([]domain.Application{{ID: 40}, {ID: 41}}, nil)

	job, apps, err := uc.ListApplicantsForJob(context.Background(), 7, 30)
	assert.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Len(t, apps, 2)
}

func TestUpdateApplicationStatusInvalidStatus(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	_, err := uc.UpdateApplicationStatus(context.Background(), 7, 40, "archived")
	assertAppError(t, err, http.StatusBadRequest,
		"Invalid status. Must be one of: pending, reviewed, shortlisted, rejected, accepted")
	appRepo.AssertNotCalled(t, "GetByID")
}

func TestUpdateApplicationStatusMissingApplication(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	appRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := uc.UpdateApplicationStatus(context.Background(), 7, 99, domain.ApplicationStatusReviewed)
	assertAppError(t, err, http.StatusNotFound, "Application not found")
}

func TestUpdateApplicationStatusNotOwner(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	appRepo.On("GetByID", mock.Anything, int64(40)).Return(&domain.Application{ID: 40, JobID: 30}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, RecruiterID: 7}, nil)

	_, err := uc.UpdateApplicationStatus(context.Background(), 8, 40, domain.ApplicationStatusAccepted)
	assertAppError(t, err, http.StatusForbidden, "You can only update applications for your own jobs")
	appRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateApplicationStatusSuccess(t *testing.T) {
	appRepo := new(mockApplicationRepo)
	jobRepo := new(mockJobRepo)
	uc := NewApplicationUsecase(appRepo, jobRepo)

	appRepo.On("GetByID", mock.Anything, int64(40)).Return(&domain.Application{ID: 40, JobID: 30}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(30)).Return(&domain.Job{ID: 30, RecruiterID: 7}, nil)
	appRepo.On("UpdateStatus", mock.Anything, int64(40), domain.ApplicationStatusShortlisted).
		Return(&domain.Application{ID: 40, JobID: 30, Status: domain.ApplicationStatusShortlisted}, nil)

	app, err := uc.UpdateApplicationStatus(context.Background(), 7, 40, domain.ApplicationStatusShortlisted)
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusShortlisted, app.Status)
	appRepo.AssertExpectations(t)
}
