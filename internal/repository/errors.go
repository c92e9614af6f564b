package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#23505:~:text=foreign_key_violation-,23505,-unique_violation
const (
	PgErrUniqueViolation    = "23505"
	PgErrSerializationError = "40001"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsPgUniqueViolation уточняет нарушение уникальности до конкретного
// констрейнта: у deliveries их два (order_id и tracking_number), и
// сервису нужно различать, какой именно сработал.
func IsPgUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == PgErrUniqueViolation && pgErr.ConstraintName == constraint
	}
	return false
}
