package db

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrUniqueViolation reports that the store rejected a write because of a
// UNIQUE constraint. Repositories translate it into the entity's duplicate
// error.
var ErrUniqueViolation = errors.New("unique constraint violation")

type ErrorClass int

const (
	ErrorClassPermanent ErrorClass = iota
	ErrorClassUnique
	ErrorClassNoRows
	ErrorClassUnavailable
)

// ClassifyError sorts a driver error into the classes the repositories act
// on. Anything unrecognised is treated as the store being unavailable.
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassPermanent
	}

	if errors.Is(err, ErrUniqueViolation) {
		return ErrorClassUnique
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrorClassNoRows
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrorClassUnique
		case "23502", "23514":
			return ErrorClassPermanent
		}
		return ErrorClassUnavailable
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch code := liteErr.Code(); {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrorClassUnique
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(liteErr.Error(), "UNIQUE") {
				return ErrorClassUnique
			}
			return ErrorClassPermanent
		}
		return ErrorClassUnavailable
	}

	// Fallback for drivers that only expose the message.
	if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
		return ErrorClassUnique
	}

	return ErrorClassUnavailable
}

// IsUniqueViolation reports whether err came from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	return ClassifyError(err) == ErrorClassUnique
}

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return ClassifyError(err) == ErrorClassNoRows
}
