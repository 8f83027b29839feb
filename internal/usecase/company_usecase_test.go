package usecase

import (
	"context"
	"net/http"
	"testing"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCompanyNotFound(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	uc := NewCompanyUsecase(companyRepo)

	companyRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := uc.GetCompany(context.Background(), 99)
	assertAppError(t, err, http.StatusNotFound, "Company not found")
}

func TestUpdateCompanyMissingBeforeOwnership(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	uc := NewCompanyUsecase(companyRepo)

	companyRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	recruiter := &domain.User{ID: 7, Role: domain.RoleRecruiter}
	_, err := uc.UpdateCompany(context.Background(), recruiter, 99, &domain.CompanyUpdate{})
	assertAppError(t, err, http.StatusNotFound, "Company not found")
	companyRepo.AssertNotCalled(t, "Update")
}

func TestUpdateCompanyNotOwn(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	uc := NewCompanyUsecase(companyRepo)

	companyRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Company{ID: 5}, nil)

	otherCompany := int64(9)
	recruiter := &domain.User{ID: 7, Role: domain.RoleRecruiter, CompanyID: &otherCompany}
	_, err := uc.UpdateCompany(context.Background(), recruiter, 5, &domain.CompanyUpdate{})
	assertAppError(t, err, http.StatusForbidden, "You can only update your own company")
	companyRepo.AssertNotCalled(t, "Update")
}

func TestUpdateCompanyNoCompanyAttached(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	uc := NewCompanyUsecase(companyRepo)

	companyRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Company{ID: 5}, nil)

	recruiter := &domain.User{ID: 7, Role: domain.RoleRecruiter}
	_, err := uc.UpdateCompany(context.Background(), recruiter, 5, &domain.CompanyUpdate{})
	assertAppError(t, err, http.StatusForbidden, "You can only update your own company")
}

func TestUpdateCompanySuccess(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	uc := NewCompanyUsecase(companyRepo)

	name := "Acme Rebranded"

	companyRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Company{ID: 5, Name: "Acme"}, nil)
	companyRepo.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(in *domain.CompanyUpdate) bool {
		return in.Name != nil && *in.Name == name
	})).Return(&domain.Company{ID: 5, Name: name}, nil)

	ownCompany := int64(5)
	recruiter := &domain.User{ID: 7, Role: domain.RoleRecruiter, CompanyID: &ownCompany}
	company, err := uc.UpdateCompany(context.Background(), recruiter, 5, &domain.CompanyUpdate{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, name, company.Name)
	companyRepo.AssertExpectations(t)
}

func TestListCompanies(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	uc := NewCompanyUsecase(companyRepo)

	companyRepo.On("Fetch", mock.Anything).Return([]domain.Company{{ID: 1}, {ID: 2}}, nil)

	companies, err := uc.ListCompanies(context.Background())
	assert.NoError(t, err)
	assert.Len(t, companies, 2)
}
