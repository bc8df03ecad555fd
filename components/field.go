package components

import (
	"fmt"

	"github.com/teranos/whence/errors"
)

// Field identifies one slot of a temporal component set.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
	Weekday
	Meridiem
	TZOffset

	numFields
)

// fieldNames maps Field values to their string names.
var fieldNames = [...]string{
	Year:        "year",
	Month:       "month",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Millisecond: "millisecond",
	Weekday:     "weekday",
	Meridiem:    "meridiem",
	TZOffset:    "timezone_offset",
}

// String returns the name of the field.
func (f Field) String() string {
	if f >= 0 && f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Meridiem values. These match the convention used by 12-hour clock
// producers: AM for hours before noon, PM for noon onward.
const (
	AM = 0
	PM = 1
)

// Weekday indices, Sunday-based.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// bounds returns the inclusive domain of each field. Timezone offsets
// cover UTC-12:00 through UTC+14:00.
func (f Field) bounds() (min, max int) {
	switch f {
	case Year:
		return 1, 9999
	case Month:
		return 1, 12
	case Day:
		return 1, 31
	case Hour:
		return 0, 23
	case Minute, Second:
		return 0, 59
	case Millisecond:
		return 0, 999
	case Weekday:
		return Sunday, Saturday
	case Meridiem:
		return AM, PM
	case TZOffset:
		return -12 * 60, 14 * 60
	}
	return 0, 0
}

// CheckRange validates a literal against the field's domain. Out-of-range
// literals are rejected before any calendar arithmetic runs.
func (f Field) CheckRange(value int) error {
	min, max := f.bounds()
	if value < min || value > max {
		return errors.NewOutOfRangeError(f.String(), value, min, max)
	}
	return nil
}

// Certainty is the knowledge state of a single field slot.
type Certainty int

const (
	// Unset means nothing is known about the field.
	Unset Certainty = iota
	// Implied means the value was inferred by convention and yields to
	// any explicit statement.
	Implied
	// Certain means the value was explicitly stated in the source text.
	Certain
)

// String returns the name of the certainty state.
func (c Certainty) String() string {
	switch c {
	case Unset:
		return "unset"
	case Implied:
		return "implied"
	case Certain:
		return "certain"
	}
	return fmt.Sprintf("Certainty(%d)", int(c))
}
