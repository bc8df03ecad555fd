// Package errors provides error handling for whence.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Typed sentinel errors for the temporal resolution taxonomy
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := resolveSpan(day, month); err != nil {
//	    return errors.Wrap(err, "failed to resolve span")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidCalendarDate) {
//	    // skip this span, continue the pipeline
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the temporal resolution taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidCalendarDate indicates a day/month/year combination that
	// cannot exist (day 31 of a 30-day month, Feb 29 outside a leap year).
	// The offending span produces no date; it is never guessed or clamped.
	ErrInvalidCalendarDate = New("invalid calendar date")

	// ErrConflictingValue indicates two certain assignments to the same
	// component field disagree. The caller decides whether to discard the
	// merged result or prefer one source.
	ErrConflictingValue = New("conflicting value")

	// ErrIncompleteDate indicates resolution was requested before
	// year/month/day were at least implied.
	ErrIncompleteDate = New("incomplete date")

	// ErrOutOfRange indicates a literal outside its domain (day > 31,
	// month > 12, weekday index outside 0-6). Rejected before any
	// calendar arithmetic runs.
	ErrOutOfRange = New("value out of range")
)

// IsInvalidCalendarDate checks if an error is or wraps ErrInvalidCalendarDate.
// Out-of-range literals are the same failure class, so they match too.
func IsInvalidCalendarDate(err error) bool {
	return err != nil && (Is(err, ErrInvalidCalendarDate) || Is(err, ErrOutOfRange))
}

// IsConflictingValue checks if an error is or wraps ErrConflictingValue
func IsConflictingValue(err error) bool {
	return err != nil && Is(err, ErrConflictingValue)
}

// IsIncompleteDate checks if an error is or wraps ErrIncompleteDate
func IsIncompleteDate(err error) bool {
	return err != nil && Is(err, ErrIncompleteDate)
}

// NewConflictError creates a conflicting-value error naming the field and
// both values
func NewConflictError(field string, have, want int) error {
	return Wrap(ErrConflictingValue, Newf("field %s already certain at %d, refusing %d", field, have, want).Error())
}

// NewOutOfRangeError creates an out-of-range error naming the field and
// its allowed domain
func NewOutOfRangeError(field string, value, min, max int) error {
	return Wrap(ErrOutOfRange, Newf("%s %d outside [%d, %d]", field, value, min, max).Error())
}
