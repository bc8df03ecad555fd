package refs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/whence/components"
)

// Saturday afternoon, mid-June
var ref = time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

func date(c *components.Components) (year, month, day int) {
	return c.Value(components.Year), c.Value(components.Month), c.Value(components.Day)
}

func TestNow(t *testing.T) {
	c := Now(ref)

	year, month, day := date(c)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, month)
	assert.Equal(t, 15, day)
	assert.True(t, c.IsCertain(components.Hour))
	assert.Equal(t, 14, c.Value(components.Hour))
	assert.Equal(t, 30, c.Value(components.Minute))
	assert.Equal(t, 45, c.Value(components.Second))

	resolved, err := c.Resolve(ref)
	require.NoError(t, err)
	assert.True(t, resolved.Equal(ref))
}

func TestTodayTomorrowYesterday(t *testing.T) {
	tests := []struct {
		name string
		c    *components.Components
		day  int
	}{
		{"today", Today(ref), 15},
		{"tomorrow", Tomorrow(ref), 16},
		{"yesterday", Yesterday(ref), 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			year, month, day := date(tc.c)
			assert.Equal(t, 2024, year)
			assert.Equal(t, 6, month)
			assert.Equal(t, tc.day, day)
			assert.True(t, tc.c.IsCertain(components.Day))
			// casual dates leave the clock alone
			assert.False(t, tc.c.Known(components.Hour))
		})
	}
}

func TestDayOffsetCrossesMonth(t *testing.T) {
	c := DayOffset(time.Date(2024, 6, 29, 8, 0, 0, 0, time.UTC), 3)

	year, month, day := date(c)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)
	assert.Equal(t, 2, day)
}

func TestDayOffsetComposition(t *testing.T) {
	// dayOffset(1) applied twice equals dayOffset(2) from the original
	// reference
	step1, err := Tomorrow(ref).Resolve(ref)
	require.NoError(t, err)
	composed := Tomorrow(step1)

	direct := DayOffset(ref, 2)

	assert.Equal(t, direct.Value(components.Year), composed.Value(components.Year))
	assert.Equal(t, direct.Value(components.Month), composed.Value(components.Month))
	assert.Equal(t, direct.Value(components.Day), composed.Value(components.Day))
}

func TestWeekAndFortnightOffsets(t *testing.T) {
	_, _, day := date(NextWeek(ref))
	assert.Equal(t, 22, day)

	_, _, day = date(LastWeek(ref))
	assert.Equal(t, 8, day)

	_, month, day := date(NextFortnight(ref))
	assert.Equal(t, 6, month)
	assert.Equal(t, 29, day)

	_, _, day = date(LastFortnight(ref))
	assert.Equal(t, 1, day)

	_, _, day = date(ThisFortnight(ref))
	assert.Equal(t, 15, day)
}

func TestMonthOffsetClampsDay(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		n         int
		wantYear  int
		wantMonth int
		wantDay   int
	}{
		{
			name:      "Jan 31 plus one month clamps to end of February",
			ref:       time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			n:         1,
			wantYear:  2023,
			wantMonth: 2,
			wantDay:   28,
		},
		{
			name:      "leap year keeps the 29th",
			ref:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			n:         1,
			wantYear:  2024,
			wantMonth: 2,
			wantDay:   29,
		},
		{
			name:      "year boundary forward",
			ref:       time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			n:         1,
			wantYear:  2025,
			wantMonth: 1,
			wantDay:   10,
		},
		{
			name:      "year boundary backward",
			ref:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			n:         -1,
			wantYear:  2023,
			wantMonth: 12,
			wantDay:   10,
		},
		{
			name:      "Mar 31 minus one month clamps to end of February",
			ref:       time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
			n:         -1,
			wantYear:  2023,
			wantMonth: 2,
			wantDay:   28,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := MonthOffset(tc.ref, tc.n)
			assert.Equal(t, tc.wantYear, c.Value(components.Year))
			assert.Equal(t, tc.wantMonth, c.Value(components.Month))
			assert.Equal(t, tc.wantDay, c.Value(components.Day))

			// the clamped day is an approximation, not a statement
			assert.True(t, c.IsCertain(components.Month))
			_, certainty := c.Get(components.Day)
			assert.Equal(t, components.Implied, certainty)
		})
	}
}

func TestNextWeekendOnSaturday(t *testing.T) {
	// ref is itself a Saturday: the weekend anchors on it, not a week out
	c := NextWeekend(ref)

	year, month, day := date(c)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, month)
	assert.Equal(t, 15, day)

	value, certainty := c.Get(components.Weekday)
	assert.Equal(t, components.Saturday, value)
	assert.Equal(t, components.Implied, certainty)
}

func TestNextWeekendMidweek(t *testing.T) {
	wednesday := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	c := NextWeekend(wednesday)

	_, _, day := date(c)
	assert.Equal(t, 15, day)

	resolved, err := c.Resolve(wednesday)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, resolved.Weekday())
}

func TestNextWeekendSpan(t *testing.T) {
	saturday, sunday := NextWeekendSpan(ref)

	_, _, satDay := date(saturday)
	_, _, sunDay := date(sunday)
	assert.Equal(t, 15, satDay)
	assert.Equal(t, 16, sunDay)

	value, _ := sunday.Get(components.Weekday)
	assert.Equal(t, components.Sunday, value)
}

func TestNextWeekendSpanCrossesMonth(t *testing.T) {
	// Saturday August 31: the Sunday of the window is September 1
	saturday, sunday := NextWeekendSpan(time.Date(2024, 8, 31, 9, 0, 0, 0, time.UTC))

	_, month, day := date(saturday)
	assert.Equal(t, 8, month)
	assert.Equal(t, 31, day)

	_, month, day = date(sunday)
	assert.Equal(t, 9, month)
	assert.Equal(t, 1, day)
}
