package domain

import (
	"context"
	"time"
)

type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CompanyUpdate carries partial-update input; nil fields stay untouched.
type CompanyUpdate struct {
	Name        *string
	Description *string
	Website     *string
}

func (c *CompanyUpdate) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Website == nil
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	Fetch(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, id int64, input *CompanyUpdate) (*Company, error)
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)
	UpdateCompany(ctx context.Context, user *User, id int64, input *CompanyUpdate) (*Company, error)
}
