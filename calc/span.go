package calc

import (
	"time"

	"github.com/teranos/whence/components"
	"github.com/teranos/whence/errors"
)

// SpanInput carries the numeric literals of a month-day mention such as
// "3-5 de marzo" or "28 de febrero de 2023". Zero values mark the
// optional literals as absent.
type SpanInput struct {
	Day    int
	EndDay int // 0 when the mention names a single day
	Month  int
	Year   int // 0 when no explicit year was written
}

// Span is a resolved month-day mention. End is nil for single dates.
type Span struct {
	Start *components.Components
	End   *components.Components
}

// MonthDay validates and resolves a month-day mention against the
// reference instant.
//
// With an explicit year the day is validated against that year's month
// length. Without one, the nearest calendar year that makes the date
// valid is chosen and implied, so "29 de febrero" lands on the closest
// leap year. An impossible date fails with ErrInvalidCalendarDate; no
// date is ever fabricated or clamped.
//
// A span written in descending order ("28 al 2 de febrero") continues
// into the following month. December rolling into January increments the
// end year.
func MonthDay(ref time.Time, in SpanInput) (*Span, error) {
	if err := components.Day.CheckRange(in.Day); err != nil {
		return nil, err
	}
	if err := components.Month.CheckRange(in.Month); err != nil {
		return nil, err
	}
	if in.EndDay != 0 {
		if err := components.Day.CheckRange(in.EndDay); err != nil {
			return nil, err
		}
	}

	yearImplied := in.Year == 0
	year := in.Year
	if yearImplied {
		closest, ok := components.ClosestYear(ref, in.Day, in.Month)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidCalendarDate,
				"day %d does not exist in month %d of any year", in.Day, in.Month)
		}
		year = closest
	} else {
		if err := components.Year.CheckRange(year); err != nil {
			return nil, err
		}
		if !components.ValidDate(in.Day, in.Month, year) {
			return nil, errors.Wrapf(errors.ErrInvalidCalendarDate,
				"day %d does not exist in %d-%02d", in.Day, year, in.Month)
		}
	}

	// Day-less template; start and end diverge from clones of it so
	// neither ever overwrites the other's certain day.
	template := components.New()
	if yearImplied {
		template.Imply(components.Year, year)
	} else if err := template.Assign(components.Year, year); err != nil {
		return nil, err
	}
	if err := template.Assign(components.Month, in.Month); err != nil {
		return nil, err
	}

	start := template.Clone()
	if err := start.Assign(components.Day, in.Day); err != nil {
		return nil, err
	}

	if in.EndDay == 0 {
		return &Span{Start: start}, nil
	}

	end, err := endOfSpan(template, in, year, yearImplied)
	if err != nil {
		return nil, err
	}
	return &Span{Start: start, End: end}, nil
}

// endOfSpan builds the end date of a day range from the day-less
// template. An end day below the start day rolls into the following
// month rather than being rejected.
func endOfSpan(template *components.Components, in SpanInput, year int, yearImplied bool) (*components.Components, error) {
	endMonth := in.Month
	endYear := year
	if in.EndDay < in.Day {
		endMonth = in.Month%12 + 1
		if in.Month == 12 {
			endYear++
		}
	}
	if !components.ValidDate(in.EndDay, endMonth, endYear) {
		return nil, errors.Wrapf(errors.ErrInvalidCalendarDate,
			"end day %d does not exist in %d-%02d", in.EndDay, endYear, endMonth)
	}

	if endMonth == in.Month {
		end := template.Clone()
		return end, end.Assign(components.Day, in.EndDay)
	}

	// month rollover: the end date gets its own month and year
	end := components.New()
	if yearImplied {
		end.Imply(components.Year, endYear)
	} else if err := end.Assign(components.Year, endYear); err != nil {
		return nil, err
	}
	if err := end.Assign(components.Month, endMonth); err != nil {
		return nil, err
	}
	if err := end.Assign(components.Day, in.EndDay); err != nil {
		return nil, err
	}
	return end, nil
}
