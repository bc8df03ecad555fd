package calc

import (
	"time"

	"github.com/teranos/whence/components"
	"github.com/teranos/whence/errors"
)

// DayPart is a qualitative day-part word from the closed recognizer
// vocabulary.
type DayPart string

const (
	Morning        DayPart = "morning"
	Afternoon      DayPart = "afternoon"
	Evening        DayPart = "evening"
	Night          DayPart = "night"
	Noon           DayPart = "noon"
	Midnight       DayPart = "midnight"
	Dawn           DayPart = "dawn"
	Dusk           DayPart = "dusk"
	EarlyMorning   DayPart = "early-morning"
	EarlyAfternoon DayPart = "early-afternoon"
	EarlyEvening   DayPart = "early-evening"
	LateAfternoon  DayPart = "late-afternoon"
	LateNight      DayPart = "late-night"
)

// dayPartHour is the fixed hour/meridiem implication table. Hours are
// the conventional anchor for each word, not measurements: afternoon
// starts mid-afternoon, dawn sits before sunrise, late night touches
// the last hour of the day.
var dayPartHour = map[DayPart]struct {
	hour     int
	meridiem int
}{
	Morning:        {6, components.AM},
	Afternoon:      {15, components.PM},
	Evening:        {20, components.PM},
	Night:          {22, components.PM},
	Noon:           {12, components.PM},
	Dawn:           {5, components.AM},
	Dusk:           {18, components.PM},
	EarlyMorning:   {7, components.AM},
	EarlyAfternoon: {13, components.PM},
	EarlyEvening:   {20, components.PM},
	LateAfternoon:  {17, components.PM},
	LateNight:      {23, components.PM},
}

// Valid reports whether the lexeme belongs to the closed vocabulary.
func (p DayPart) Valid() bool {
	if p == Midnight {
		return true
	}
	_, ok := dayPartHour[p]
	return ok
}

// AtDayPart returns components implying the hour for a day-part word.
// Implications never overwrite explicit values elsewhere in the same
// text, so an explicit hour always wins over these approximations.
//
// Midnight names the start of the following day: the returned components
// imply the reference's next calendar date with hour, minute, and second
// zero. This convention is applied uniformly across all casual
// producers.
func AtDayPart(ref time.Time, part DayPart) (*components.Components, error) {
	c := components.New()
	if err := ImplyDayPart(c, ref, part); err != nil {
		return nil, err
	}
	return c, nil
}

// ImplyDayPart applies a day-part implication to an existing component
// set, such as a casual date. Certain and already-implied fields are
// left alone.
func ImplyDayPart(c *components.Components, ref time.Time, part DayPart) error {
	if part == Midnight {
		next := ref.AddDate(0, 0, 1)
		c.Imply(components.Year, next.Year())
		c.Imply(components.Month, int(next.Month()))
		c.Imply(components.Day, next.Day())
		c.Imply(components.Hour, 0)
		c.Imply(components.Minute, 0)
		c.Imply(components.Second, 0)
		c.Imply(components.Meridiem, components.AM)
		return nil
	}

	entry, ok := dayPartHour[part]
	if !ok {
		return errors.Wrapf(errors.ErrOutOfRange, "unknown day part %q", part)
	}
	c.Imply(components.Hour, entry.hour)
	c.Imply(components.Meridiem, entry.meridiem)
	return nil
}
