// Package components holds partially-known date/time values extracted from
// natural-language text, tracking for every field whether it is unset,
// implied by convention, or certain from the source.
//
// A Components value is exclusively owned by whoever created it until it is
// handed off; anything needing two divergent outputs from one base must
// Clone before mutating. The producers in refs and calc follow that
// discipline, which makes every operation here safe to run concurrently
// across independent text spans.
package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teranos/whence/errors"
)

// slot is one field's value plus its knowledge state.
type slot struct {
	value     int
	certainty Certainty
}

// Components is a partially-known date/time value. The zero value is a
// fully-unset set, ready for use.
type Components struct {
	slots [numFields]slot
}

// New returns an empty component set.
func New() *Components {
	return &Components{}
}

// Assign sets a certain value. A certain field is never silently
// overwritten: assigning a different value over an existing certain one
// fails with ErrConflictingValue. Assigning the same value is idempotent.
func (c *Components) Assign(f Field, value int) error {
	if err := f.CheckRange(value); err != nil {
		return err
	}
	s := &c.slots[f]
	if s.certainty == Certain && s.value != value {
		return errors.NewConflictError(f.String(), s.value, value)
	}
	s.value = value
	s.certainty = Certain
	return nil
}

// Imply records a conventional value for a field that has nothing known
// yet. It never downgrades: implied and certain fields are left alone, as
// is anything outside the field's domain. Returns the receiver for
// chaining.
func (c *Components) Imply(f Field, value int) *Components {
	if f.CheckRange(value) != nil {
		return c
	}
	s := &c.slots[f]
	if s.certainty == Unset {
		s.value = value
		s.certainty = Implied
	}
	return c
}

// Get returns a field's value and its knowledge state. The value is only
// meaningful when the certainty is not Unset.
func (c *Components) Get(f Field) (int, Certainty) {
	s := c.slots[f]
	return s.value, s.certainty
}

// Value returns a field's value, or 0 when the field is unset.
func (c *Components) Value(f Field) int {
	return c.slots[f].value
}

// IsCertain reports whether the field was explicitly stated.
func (c *Components) IsCertain(f Field) bool {
	return c.slots[f].certainty == Certain
}

// Known reports whether the field is at least implied.
func (c *Components) Known(f Field) bool {
	return c.slots[f].certainty != Unset
}

// Merge folds another component set into the receiver. Certain beats
// implied beats unset. Two differing certain values fail with
// ErrConflictingValue and leave the receiver unchanged. Two differing
// implied values keep the receiver's (first writer wins), which is the
// precedence downstream arbitration expects.
func (c *Components) Merge(other *Components) error {
	// Detect conflicts before touching anything so a failed merge does
	// not leave the receiver half-updated.
	for f := Field(0); f < numFields; f++ {
		ours, theirs := c.slots[f], other.slots[f]
		if ours.certainty == Certain && theirs.certainty == Certain && ours.value != theirs.value {
			return errors.NewConflictError(f.String(), ours.value, theirs.value)
		}
	}
	for f := Field(0); f < numFields; f++ {
		theirs := other.slots[f]
		if theirs.certainty == Unset {
			continue
		}
		ours := &c.slots[f]
		switch {
		case theirs.certainty == Certain && ours.certainty != Certain:
			*ours = theirs
		case theirs.certainty == Implied && ours.certainty == Unset:
			*ours = theirs
		}
	}
	return nil
}

// Clone returns a deep, independent copy. Required before producing two
// divergent values from one base, such as an end date from a start date.
func (c *Components) Clone() *Components {
	dup := *c
	return &dup
}

// Resolve produces a concrete timestamp from the component set. It
// requires year, month, and day to be at least implied; hour, minute,
// second, and millisecond default to zero when unset. A known meridiem
// adjusts an hour in the 1-12 range supplied by a 12-hour producer; hours
// outside that range are taken as already 24-hour. A known timezone
// offset places the result in that fixed zone, otherwise the reference
// instant's location is used.
func (c *Components) Resolve(ref time.Time) (time.Time, error) {
	for _, f := range []Field{Year, Month, Day} {
		if !c.Known(f) {
			return time.Time{}, errors.Wrapf(errors.ErrIncompleteDate, "%s unknown", f)
		}
	}

	year := c.Value(Year)
	month := c.Value(Month)
	day := c.Value(Day)
	if day > DaysInMonth(month, year) {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidCalendarDate,
			"day %d does not exist in %d-%02d", day, year, month)
	}

	hour := c.Value(Hour)
	if c.Known(Meridiem) && hour >= 1 && hour <= 12 {
		switch c.Value(Meridiem) {
		case PM:
			if hour != 12 {
				hour += 12
			}
		case AM:
			if hour == 12 {
				hour = 0
			}
		}
	}

	loc := ref.Location()
	if c.Known(TZOffset) {
		offset := c.Value(TZOffset)
		loc = time.FixedZone(offsetZoneName(offset), offset*60)
	}

	return time.Date(year, time.Month(month), day,
		hour, c.Value(Minute), c.Value(Second), c.Value(Millisecond)*int(time.Millisecond),
		loc), nil
}

// String renders the set for logs and debugging, listing only known
// fields with a marker for implied ones.
func (c *Components) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for f := Field(0); f < numFields; f++ {
		s := c.slots[f]
		if s.certainty == Unset {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(f.String())
		if s.certainty == Implied {
			b.WriteString("~")
		}
		b.WriteString("=")
		b.WriteString(strconv.Itoa(s.value))
	}
	b.WriteByte('}')
	return b.String()
}

func offsetZoneName(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
