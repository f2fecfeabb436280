package repository

import (
	"errors"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateErr maps store-level failures to the typed results the services
// return. Unique violations become conflicts, broken foreign keys and empty
// result sets become not-found; everything else passes through untouched.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.ErrAlreadyBooked
		case pgForeignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}
