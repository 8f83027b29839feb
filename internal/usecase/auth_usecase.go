package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyRepository
	jwtSecret   string
	jwtExpire   time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, companyRepo domain.CompanyRepository, jwtSecret string, jwtExpire time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSecret:   jwtSecret,
		jwtExpire:   jwtExpire,
	}
}

// Register creates the account and returns it with a session token. The
// email pre-check and the store's unique constraint surface as the same
// conflict.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", apperror.Conflict("User with this email already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal("Error registering user", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperror.Internal("Error registering user", err)
	}

	// A recruiter registering with a company name but no company id gets a
	// company created implicitly.
	companyID := input.CompanyID
	if input.Role == domain.RoleRecruiter && input.CompanyName != "" && companyID == nil {
		company := &domain.Company{Name: input.CompanyName}
		if err := u.companyRepo.Create(ctx, company); err != nil {
			return nil, "", apperror.Internal("Error registering user", err)
		}
		companyID = &company.ID
	}

	user := &domain.User{
		Email:     input.Email,
		Password:  hash,
		Role:      input.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		CompanyID: companyID,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", apperror.Conflict("User with this email already exists")
		}
		return nil, "", apperror.Internal("Error registering user", err)
	}

	token, err := auth.GenerateToken(user.ID, u.jwtSecret, u.jwtExpire)
	if err != nil {
		return nil, "", apperror.Internal("Error registering user", err)
	}

	// Re-read for the joined company name
	created, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, "", apperror.Internal("Error registering user", err)
	}

	return created, token, nil
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal("Error logging in", err)
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, u.jwtSecret, u.jwtExpire)
	if err != nil {
		return nil, "", apperror.Internal("Error logging in", err)
	}

	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID int64, input *domain.UserUpdate) (*domain.User, error) {
	user, err := u.userRepo.Update(ctx, userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("Error updating profile", err)
	}
	return user, nil
}
