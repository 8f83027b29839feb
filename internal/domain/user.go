package domain

import (
	"context"
	"errors"
	"time"
)

// User roles
const (
	RoleRecruiter = "recruiter"
	RoleApplicant = "applicant"
)

var ErrEmailTaken = errors.New("email already exists")

// User is a registered account. Password holds the bcrypt credential and is
// never serialized into responses.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone,omitempty"`
	CompanyID *int64    `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Joined data
	CompanyName *string `json:"company_name,omitempty"`
}

// UserUpdate carries the partial-update input for mutable contact fields.
// Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	CompanyID *int64
}

func (u *UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Phone == nil && u.CompanyID == nil
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id int64, input *UserUpdate) (*User, error)
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Email       string
	Password    string
	Role        string
	FirstName   string
	LastName    string
	Phone       *string
	CompanyID   *int64
	CompanyName string
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, input *UserUpdate) (*User, error)
}
