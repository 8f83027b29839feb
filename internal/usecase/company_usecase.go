package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := u.companyRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal("Error fetching companies", err)
	}
	return companies, nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal("Error fetching company", err)
	}
	return company, nil
}

// UpdateCompany lets a recruiter update the company their account belongs
// to. Existence is checked before ownership.
func (u *companyUsecase) UpdateCompany(ctx context.Context, user *domain.User, id int64, input *domain.CompanyUpdate) (*domain.Company, error) {
	_, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal("Error updating company", err)
	}

	if user.CompanyID == nil || *user.CompanyID != id {
		return nil, apperror.Forbidden("You can only update your own company")
	}

	company, err := u.companyRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal("Error updating company", err)
	}
	return company, nil
}
