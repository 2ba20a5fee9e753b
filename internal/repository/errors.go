package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Every error returned by this package wraps exactly one of these kinds, or
// none when the failure is unexpected.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("unique constraint violation")

	// ErrInvalidReference means an insert or update pointed at a row that does
	// not exist.
	ErrInvalidReference = errors.New("foreign key constraint failed")

	// ErrStillReferenced means a delete was rejected because other rows still
	// point at the target.
	ErrStillReferenced = errors.New("record is still referenced")
)

// SQLSTATE codes, for drivers whose errors reach us untranslated.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type operation int

const (
	opRead operation = iota
	opWrite
	opDelete
)

// translate maps a gateway error onto the closed set of kinds above. The
// original error stays in the chain for logging.
func translate(err error, op operation) error {
	if err == nil {
		return nil
	}

	kind := classify(err, op)
	if kind == nil {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func classify(err error, op operation) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKeyKind(op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return foreignKeyKind(op)
		}
	}

	return nil
}

func foreignKeyKind(op operation) error {
	if op == opDelete {
		return ErrStillReferenced
	}
	return ErrInvalidReference
}
