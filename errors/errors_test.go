package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	wrapped := Wrap(ErrInvalidCalendarDate, "day 31 does not exist in 2024-04")
	assert.True(t, Is(wrapped, ErrInvalidCalendarDate))
	assert.True(t, IsInvalidCalendarDate(wrapped))
	assert.False(t, IsConflictingValue(wrapped))

	conflict := NewConflictError("year", 2024, 2025)
	assert.True(t, Is(conflict, ErrConflictingValue))
	assert.True(t, IsConflictingValue(conflict))
	assert.Contains(t, conflict.Error(), "year")

	incomplete := Wrapf(ErrIncompleteDate, "%s unknown", "month")
	assert.True(t, IsIncompleteDate(incomplete))
}

func TestOutOfRangeIsInvalidCalendarDate(t *testing.T) {
	// out-of-range literals are the same failure class as impossible
	// dates
	err := NewOutOfRangeError("day", 40, 1, 31)
	assert.True(t, Is(err, ErrOutOfRange))
	assert.True(t, IsInvalidCalendarDate(err))
	assert.Contains(t, err.Error(), "40")
}

func TestNilSafety(t *testing.T) {
	assert.False(t, IsInvalidCalendarDate(nil))
	assert.False(t, IsConflictingValue(nil))
	assert.False(t, IsIncompleteDate(nil))
}
