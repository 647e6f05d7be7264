// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Error kinds. Match with errors.Is(err, store.ErrForeignKey).
var (
	ErrValidation = errors.New("constraint violation")
	ErrForeignKey = errors.New("foreign key violation")
	ErrDuplicate  = errors.New("duplicate entry")
	ErrStorage    = errors.New("storage failure")
)

// Error is returned by every repository operation that fails. Constraint is
// the database constraint name when the driver reports one. Field is the
// form field at fault, known only for errors rebuilt from an API response.
type Error struct {
	Kind       error
	Entity     string
	Constraint string
	Field      string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Entity, e.Kind)
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a repository error, or ErrStorage for any
// other non-nil error.
func KindOf(err error) error {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	if err == nil {
		return nil
	}
	return ErrStorage
}

// classify wraps a driver error with its kind, read from the driver's error
// code: SQLSTATE for postgres, extended result codes for sqlite.
func classify(entity string, err error) error {
	if err == nil {
		return nil
	}

	se := &Error{Kind: ErrStorage, Entity: entity, Err: err}

	var pqErr *pq.Error
	var liteErr *sqlite.Error
	switch {
	case errors.As(err, &pqErr):
		se.Constraint = pqErr.Constraint
		switch pqErr.Code {
		case "23503":
			se.Kind = ErrForeignKey
		case "23505":
			se.Kind = ErrDuplicate
		case "23502", "23514":
			se.Kind = ErrValidation
		case "22003", "22007", "22008", "22P02":
			// numeric out of range, bad datetime, bad text representation
			se.Kind = ErrValidation
		}
	case errors.As(err, &liteErr):
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			se.Kind = ErrForeignKey
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			se.Kind = ErrDuplicate
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_CHECK:
			se.Kind = ErrValidation
		}
	}

	return se
}
