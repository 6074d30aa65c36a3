package common

import (
	"errors"

	"github.com/lib/pq"
)

// ErrRecordNotFound is returned by model lookups when no row matches.
var ErrRecordNotFound = errors.New("record not found")

// UniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == name
	}

	return false
}

// ForeignKeyViolation reports whether err is a Postgres foreign-key
// violation on the named constraint. Both sides of a reference surface the
// same constraint name: an insert or update pointing at a missing parent,
// and a delete of a parent that still has children.
func ForeignKeyViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" && pqErr.Constraint == name
	}

	return false
}
