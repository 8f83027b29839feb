package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code raised when an insert breaks a
// unique constraint. Repositories map it onto domain conflict errors so the
// store-level constraint and the application-level pre-check surface as the
// same error kind.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
