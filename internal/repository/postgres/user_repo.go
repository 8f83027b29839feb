package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password, role, first_name, last_name, phone, company_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		user.Email, user.Password, user.Role, user.FirstName, user.LastName,
		user.Phone, user.CompanyID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

const userSelect = `
	SELECT u.id, u.email, u.password, u.role, u.first_name, u.last_name,
	       u.phone, u.company_id, u.created_at,
	       c.name AS company_name
	FROM users u
	LEFT JOIN companies c ON u.company_id = c.id`

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.email = $1`, email)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.FirstName,
		&user.LastName, &user.Phone, &user.CompanyID, &user.CreatedAt,
		&user.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update touches only the fields present in the input. An empty input is a
// no-op that returns the current row.
func (r *userRepo) Update(ctx context.Context, id int64, input *domain.UserUpdate) (*domain.User, error) {
	if input.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var set []string
	var args []interface{}

	appendField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.FirstName != nil {
		appendField("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		appendField("last_name", *input.LastName)
	}
	if input.Phone != nil {
		appendField("phone", *input.Phone)
	}
	if input.CompanyID != nil {
		appendField("company_id", *input.CompanyID)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, id)
}
