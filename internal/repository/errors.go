package repository

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound means the referenced contract id matched no row. Absence is not
// a failure at this layer; the handler decides how to surface it.
var ErrNotFound = errors.New("rental contract not found")

// ErrNoFields means a partial update carried no updatable column after
// filtering against the schema. Distinct from ErrNotFound.
var ErrNoFields = errors.New("no valid fields to update")

// ConstraintError means the data violated a declared schema invariant
// (date ordering, non-negativity). Caller-fixable.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// PersistenceError means the store itself failed (unreachable, I/O error).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// wrapDBError classifies a driver error: SQLite constraint failures become
// ConstraintError, everything else PersistenceError.
func wrapDBError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &ConstraintError{Err: err}
	}
	return &PersistenceError{Op: op, Err: err}
}
