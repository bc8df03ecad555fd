// Package resolve is the call surface between external recognizers and
// the temporal producers. A recognizer identifies a lexical category in
// text, extracts its numeric literals, and hands both over; this package
// validates the literals and dispatches to the matching producer,
// keeping all calendar arithmetic locale-independent.
package resolve

import (
	"fmt"
	"time"

	"github.com/teranos/whence/calc"
	"github.com/teranos/whence/components"
	"github.com/teranos/whence/errors"
	"github.com/teranos/whence/logger"
	"github.com/teranos/whence/refs"
)

// Category classifies the recognized lexical expression.
type Category int

const (
	// CategoryCasualDate covers fixed idioms: now, today, tomorrow,
	// N days ago, next week, this weekend.
	CategoryCasualDate Category = iota
	// CategoryWeekday covers weekday mentions with an optional
	// directional modifier.
	CategoryWeekday
	// CategoryMonthDay covers day-of-month mentions and day spans with
	// a month and optional year.
	CategoryMonthDay
	// CategoryDayPart covers qualitative day-part words.
	CategoryDayPart
)

// categoryNames maps Category values to their string names.
var categoryNames = [...]string{
	CategoryCasualDate: "casual_date",
	CategoryWeekday:    "weekday",
	CategoryMonthDay:   "month_day",
	CategoryDayPart:    "day_part",
}

// String returns the name of the category.
func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Casual is the sub-lexeme of a casual date reference.
type Casual string

const (
	CasualNow           Casual = "now"
	CasualToday         Casual = "today"
	CasualTomorrow      Casual = "tomorrow"
	CasualYesterday     Casual = "yesterday"
	CasualDaysAgo       Casual = "days-ago"   // uses Count
	CasualDaysAhead     Casual = "days-ahead" // uses Count
	CasualNextWeek      Casual = "next-week"
	CasualLastWeek      Casual = "last-week"
	CasualThisWeek      Casual = "this-week"
	CasualNextFortnight Casual = "next-fortnight"
	CasualLastFortnight Casual = "last-fortnight"
	CasualThisFortnight Casual = "this-fortnight"
	CasualNextMonth     Casual = "next-month"
	CasualLastMonth     Casual = "last-month"
	CasualThisMonth     Casual = "this-month"
	CasualWeekend       Casual = "weekend"
)

// Input is the in-process contract with the recognizer layer. Reference
// is the caller-supplied anchor instant, already timezone-normalized;
// this package never reads a system clock.
type Input struct {
	Reference       time.Time
	TZOffsetMinutes *int // optional fixed UTC offset

	Category Category

	// Literals; which ones apply depends on Category.
	Casual   Casual
	Count    int // day count for days-ago / days-ahead
	Weekday  int
	Modifier calc.Modifier
	Day      int
	EndDay   int
	Month    int
	Year     int
	DayPart  calc.DayPart
}

// Result is a resolved or partially-resolved component set. End is only
// present for expressions spanning two dates, such as "3-5 de marzo" or
// a weekend window.
type Result struct {
	Start *components.Components
	End   *components.Components
}

// Resolve validates the input literals and dispatches to the producer
// for the recognized category.
func Resolve(in Input) (*Result, error) {
	result, err := dispatch(in)
	if err != nil {
		logger.Debugw("temporal resolution failed",
			"category", in.Category.String(),
			"error", err)
		return nil, err
	}

	if in.TZOffsetMinutes != nil {
		if err := applyOffset(result, *in.TZOffsetMinutes); err != nil {
			return nil, err
		}
	}

	logger.Debugw("temporal resolution",
		"category", in.Category.String(),
		"start", result.Start.String())
	return result, nil
}

func dispatch(in Input) (*Result, error) {
	switch in.Category {
	case CategoryCasualDate:
		return resolveCasual(in)
	case CategoryWeekday:
		c, err := calc.AtWeekday(in.Reference, in.Weekday, in.Modifier)
		if err != nil {
			return nil, err
		}
		return &Result{Start: c}, nil
	case CategoryMonthDay:
		span, err := calc.MonthDay(in.Reference, calc.SpanInput{
			Day:    in.Day,
			EndDay: in.EndDay,
			Month:  in.Month,
			Year:   in.Year,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Start: span.Start, End: span.End}, nil
	case CategoryDayPart:
		c, err := calc.AtDayPart(in.Reference, in.DayPart)
		if err != nil {
			return nil, err
		}
		return &Result{Start: c}, nil
	}
	return nil, errors.Wrapf(errors.ErrOutOfRange, "unknown category %d", int(in.Category))
}

func resolveCasual(in Input) (*Result, error) {
	ref := in.Reference
	switch in.Casual {
	case CasualNow:
		return &Result{Start: refs.Now(ref)}, nil
	case CasualToday:
		return &Result{Start: refs.Today(ref)}, nil
	case CasualTomorrow:
		return &Result{Start: refs.Tomorrow(ref)}, nil
	case CasualYesterday:
		return &Result{Start: refs.Yesterday(ref)}, nil
	case CasualDaysAgo:
		if in.Count < 0 {
			return nil, errors.NewOutOfRangeError("count", in.Count, 0, 1<<31-1)
		}
		return &Result{Start: refs.TheDayBefore(ref, in.Count)}, nil
	case CasualDaysAhead:
		if in.Count < 0 {
			return nil, errors.NewOutOfRangeError("count", in.Count, 0, 1<<31-1)
		}
		return &Result{Start: refs.TheDayAfter(ref, in.Count)}, nil
	case CasualNextWeek:
		return &Result{Start: refs.NextWeek(ref)}, nil
	case CasualLastWeek:
		return &Result{Start: refs.LastWeek(ref)}, nil
	case CasualThisWeek:
		return &Result{Start: refs.ThisWeek(ref)}, nil
	case CasualNextFortnight:
		return &Result{Start: refs.NextFortnight(ref)}, nil
	case CasualLastFortnight:
		return &Result{Start: refs.LastFortnight(ref)}, nil
	case CasualThisFortnight:
		return &Result{Start: refs.ThisFortnight(ref)}, nil
	case CasualNextMonth:
		return &Result{Start: refs.NextMonth(ref)}, nil
	case CasualLastMonth:
		return &Result{Start: refs.LastMonth(ref)}, nil
	case CasualThisMonth:
		return &Result{Start: refs.ThisMonth(ref)}, nil
	case CasualWeekend:
		sat, sun := refs.NextWeekendSpan(ref)
		return &Result{Start: sat, End: sun}, nil
	}
	return nil, errors.Wrapf(errors.ErrOutOfRange, "unknown casual reference %q", in.Casual)
}

// applyOffset records the caller's fixed UTC offset on each produced
// set. The offset is a parsed literal, so it lands as certain.
func applyOffset(r *Result, minutes int) error {
	if err := r.Start.Assign(components.TZOffset, minutes); err != nil {
		return err
	}
	if r.End != nil {
		return r.End.Assign(components.TZOffset, minutes)
	}
	return nil
}
