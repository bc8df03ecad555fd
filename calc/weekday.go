// Package calc derives concrete calendar positions from recognized
// temporal fragments: weekday mentions with directional modifiers,
// month-day spans, and qualitative day-part words.
//
// All functions are pure; the only inputs are literals already extracted
// from text plus the caller's reference instant.
package calc

import (
	"time"

	"github.com/teranos/whence/components"
	"github.com/teranos/whence/errors"
)

// Modifier is the directional qualifier attached to a weekday mention.
type Modifier string

const (
	// ModifierNone marks a bare weekday mention ("el viernes"), which
	// resolves the same way as ModifierThis.
	ModifierNone Modifier = ""
	// ModifierThis resolves to the occurrence in the forward 7-day
	// window, including today.
	ModifierThis Modifier = "this"
	// ModifierNext resolves strictly into the following week: "next
	// Friday" said on a Friday means seven days later, never today.
	ModifierNext Modifier = "next"
	// ModifierLast resolves to the most recent occurrence strictly
	// before today.
	ModifierLast Modifier = "last"
)

// Valid reports whether the modifier is one of the recognized values.
func (m Modifier) Valid() bool {
	switch m {
	case ModifierNone, ModifierThis, ModifierNext, ModifierLast:
		return true
	}
	return false
}

// AtWeekday resolves a target weekday (0=Sunday..6=Saturday) relative to
// the reference instant under the given modifier. The result carries a
// certain year/month/day and an implied weekday marker.
//
// The delta==0 cases are deliberate and asymmetric: "next" and "last" on
// a day that already is the target never collapse to today, while "this"
// and an unspecified modifier do.
func AtWeekday(ref time.Time, target int, modifier Modifier) (*components.Components, error) {
	if err := components.Weekday.CheckRange(target); err != nil {
		return nil, err
	}
	if !modifier.Valid() {
		return nil, errors.Wrapf(errors.ErrOutOfRange, "unknown weekday modifier %q", modifier)
	}

	refDow := int(ref.Weekday())
	delta := (target - refDow + 7) % 7

	switch modifier {
	case ModifierNext:
		if delta == 0 {
			delta = 7
		}
	case ModifierLast:
		if delta == 0 {
			delta = -7
		} else {
			delta -= 7
		}
	case ModifierThis, ModifierNone:
		// delta already the smallest non-negative offset, today included
	}

	date := ref.AddDate(0, 0, delta)
	c := components.New()
	if err := c.Assign(components.Year, date.Year()); err != nil {
		return nil, err
	}
	if err := c.Assign(components.Month, int(date.Month())); err != nil {
		return nil, err
	}
	if err := c.Assign(components.Day, date.Day()); err != nil {
		return nil, err
	}
	c.Imply(components.Weekday, target)
	return c, nil
}
