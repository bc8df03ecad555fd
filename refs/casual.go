// Package refs resolves casual date references — fixed idioms like
// "today", "tomorrow", "next week", or "this weekend" — into temporal
// component sets anchored to a reference instant.
//
// Every function here is pure and total: a valid reference instant always
// produces a component set, never an error.
package refs

import (
	"time"

	"github.com/teranos/whence/components"
)

// Now returns components with both the calendar date and the clock time
// certain from the reference instant.
func Now(ref time.Time) *components.Components {
	c := components.New()
	assignDate(c, ref)
	assignTime(c, ref)
	return c
}

// Today returns the reference's calendar date, all three date fields
// certain. Time fields are left untouched.
func Today(ref time.Time) *components.Components {
	return DayOffset(ref, 0)
}

// Tomorrow returns the calendar date one day after the reference.
func Tomorrow(ref time.Time) *components.Components {
	return DayOffset(ref, 1)
}

// Yesterday returns the calendar date one day before the reference.
func Yesterday(ref time.Time) *components.Components {
	return DayOffset(ref, -1)
}

// TheDayAfter returns the date n days after the reference, for idioms
// like "pasado mañana" (n=2) or "dentro de 5 días".
func TheDayAfter(ref time.Time, n int) *components.Components {
	return DayOffset(ref, n)
}

// TheDayBefore returns the date n days before the reference, for idioms
// like "anteayer" (n=2) or "hace 3 días".
func TheDayBefore(ref time.Time, n int) *components.Components {
	return DayOffset(ref, -n)
}

// DayOffset returns the reference's calendar date shifted by n days,
// all three date fields certain.
func DayOffset(ref time.Time, n int) *components.Components {
	c := components.New()
	assignDate(c, ref.AddDate(0, 0, n))
	return c
}

// WeekOffset returns the date shifted by n seven-day weeks.
func WeekOffset(ref time.Time, n int) *components.Components {
	return DayOffset(ref, n*7)
}

// FortnightOffset returns the date shifted by n fourteen-day fortnights.
func FortnightOffset(ref time.Time, n int) *components.Components {
	return DayOffset(ref, n*14)
}

// MonthOffset shifts the reference date by n calendar months. Year and
// month come out certain; the day is implied, clamped to the target
// month's length so January 31 plus one month lands on the last day of
// February rather than an invalid date.
func MonthOffset(ref time.Time, n int) *components.Components {
	months := int(ref.Month()) - 1 + n
	year := ref.Year() + months/12
	month := months % 12
	if month < 0 {
		month += 12
		year--
	}
	month++ // back to 1-based

	day := ref.Day()
	if max := components.DaysInMonth(month, year); day > max {
		day = max
	}

	c := components.New()
	mustAssign(c, components.Year, year)
	mustAssign(c, components.Month, month)
	c.Imply(components.Day, day)
	return c
}

// Named wrappers matching the casual vocabulary handed over by
// recognizers.

func NextWeek(ref time.Time) *components.Components      { return WeekOffset(ref, 1) }
func LastWeek(ref time.Time) *components.Components      { return WeekOffset(ref, -1) }
func ThisWeek(ref time.Time) *components.Components      { return WeekOffset(ref, 0) }
func NextFortnight(ref time.Time) *components.Components { return FortnightOffset(ref, 1) }
func LastFortnight(ref time.Time) *components.Components { return FortnightOffset(ref, -1) }
func ThisFortnight(ref time.Time) *components.Components { return FortnightOffset(ref, 0) }
func NextMonth(ref time.Time) *components.Components     { return MonthOffset(ref, 1) }
func LastMonth(ref time.Time) *components.Components     { return MonthOffset(ref, -1) }
func ThisMonth(ref time.Time) *components.Components     { return MonthOffset(ref, 0) }

// NextWeekend anchors on the soonest Saturday on or after the reference
// date. A reference that already falls on a Saturday anchors on itself,
// not the following week. The Saturday's date fields are certain and the
// weekday is recorded as an implied marker for downstream span
// interpretation.
func NextWeekend(ref time.Time) *components.Components {
	delta := (components.Saturday - int(ref.Weekday()) + 7) % 7
	c := DayOffset(ref, delta)
	c.Imply(components.Weekday, components.Saturday)
	return c
}

// NextWeekendSpan returns the weekend window as a Saturday/Sunday pair.
// The Sunday carries its own implied weekday marker.
func NextWeekendSpan(ref time.Time) (saturday, sunday *components.Components) {
	saturday = NextWeekend(ref)
	sat, _ := saturday.Resolve(ref) // date fields certain, cannot fail
	sunday = DayOffset(sat, 1)
	sunday.Imply(components.Weekday, components.Sunday)
	return saturday, sunday
}

// assignDate marks the calendar date certain from an instant. The values
// come from a valid time, so assignment into fresh slots cannot fail.
func assignDate(c *components.Components, t time.Time) {
	mustAssign(c, components.Year, t.Year())
	mustAssign(c, components.Month, int(t.Month()))
	mustAssign(c, components.Day, t.Day())
}

// assignTime marks the clock time certain from an instant.
func assignTime(c *components.Components, t time.Time) {
	mustAssign(c, components.Hour, t.Hour())
	mustAssign(c, components.Minute, t.Minute())
	mustAssign(c, components.Second, t.Second())
	mustAssign(c, components.Millisecond, t.Nanosecond()/int(time.Millisecond))
}

func mustAssign(c *components.Components, f components.Field, v int) {
	if err := c.Assign(f, v); err != nil {
		// only reachable through a bug in this package's arithmetic
		panic(err)
	}
}
