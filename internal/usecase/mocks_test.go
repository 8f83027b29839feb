package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, input *domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepo) Update(ctx context.Context, id int64, input *domain.CompanyUpdate) (*domain.Company, error) {
	args := m.Called(ctx, id, input)
	if c := args.Get(0); c != nil {
		return c.(*domain.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if j := args.Get(0); j != nil {
		return j.(*domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if j := args.Get(0); j != nil {
		return j.([]domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepo) Update(ctx context.Context, id int64, input *domain.JobUpdate) (*domain.Job, error) {
	args := m.Called(ctx, id, input)
	if j := args.Get(0); j != nil {
		return j.(*domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockApplicationRepo struct {
	mock.Mock
}

func (m *mockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	args := m.Called(ctx, jobID, applicantID)
	if a := args.Get(0); a != nil {
		return a.(*domain.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if a := args.Get(0); a != nil {
		return a.([]domain.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if a := args.Get(0); a != nil {
		return a.([]domain.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if a := args.Get(0); a != nil {
		return a.(*domain.Application), args.Error(1)
	}
	return nil, args.Error(1)
}
