package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/whence/components"
	"github.com/teranos/whence/errors"
)

func resolveDate(t *testing.T, c *components.Components, ref time.Time) time.Time {
	t.Helper()
	resolved, err := c.Resolve(ref)
	require.NoError(t, err)
	return resolved
}

func TestAtWeekdayNext(t *testing.T) {
	// every reference weekday against every target weekday
	for refDow := 0; refDow < 7; refDow++ {
		// 2024-06-02 is a Sunday; adding refDow walks one full week
		ref := time.Date(2024, 6, 2+refDow, 12, 0, 0, 0, time.UTC)
		require.Equal(t, refDow, int(ref.Weekday()))

		for target := 0; target < 7; target++ {
			c, err := AtWeekday(ref, target, ModifierNext)
			require.NoError(t, err)

			resolved := resolveDate(t, c, ref)
			days := int(resolved.Sub(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)

			assert.Equal(t, target, int(resolved.Weekday()), "ref dow %d target %d", refDow, target)
			assert.GreaterOrEqual(t, days, 1, "next is strictly forward")
			assert.LessOrEqual(t, days, 7)
			if target == refDow {
				// "next friday" said on a Friday is a week out, not today
				assert.Equal(t, 7, days)
			}
		}
	}
}

func TestAtWeekdayLast(t *testing.T) {
	for refDow := 0; refDow < 7; refDow++ {
		ref := time.Date(2024, 6, 2+refDow, 12, 0, 0, 0, time.UTC)
		require.Equal(t, refDow, int(ref.Weekday()))

		for target := 0; target < 7; target++ {
			c, err := AtWeekday(ref, target, ModifierLast)
			require.NoError(t, err)

			resolved := resolveDate(t, c, ref)
			days := int(resolved.Sub(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)

			assert.Equal(t, target, int(resolved.Weekday()))
			assert.LessOrEqual(t, days, -1, "last is strictly backward")
			assert.GreaterOrEqual(t, days, -7)
			if target == refDow {
				assert.Equal(t, -7, days)
			}
		}
	}
}

func TestAtWeekdayThis(t *testing.T) {
	for refDow := 0; refDow < 7; refDow++ {
		ref := time.Date(2024, 6, 2+refDow, 12, 0, 0, 0, time.UTC)

		for target := 0; target < 7; target++ {
			for _, modifier := range []Modifier{ModifierThis, ModifierNone} {
				c, err := AtWeekday(ref, target, modifier)
				require.NoError(t, err)

				resolved := resolveDate(t, c, ref)
				days := int(resolved.Sub(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)).Hours() / 24)

				assert.Equal(t, target, int(resolved.Weekday()))
				assert.GreaterOrEqual(t, days, 0, "this includes today")
				assert.LessOrEqual(t, days, 6)
				if target == refDow {
					assert.Equal(t, 0, days, "this on the same weekday is today")
				}
			}
		}
	}
}

func TestAtWeekdayMarksImpliedWeekday(t *testing.T) {
	ref := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) // Monday

	c, err := AtWeekday(ref, components.Friday, ModifierThis)
	require.NoError(t, err)

	// "this friday" said on a Monday is the upcoming Friday
	assert.Equal(t, 14, c.Value(components.Day))
	assert.True(t, c.IsCertain(components.Day))

	value, certainty := c.Get(components.Weekday)
	assert.Equal(t, components.Friday, value)
	assert.Equal(t, components.Implied, certainty)
}

func TestAtWeekdayCrossesMonthBoundary(t *testing.T) {
	// Friday June 28: next Monday is July 1
	ref := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)

	c, err := AtWeekday(ref, components.Monday, ModifierNext)
	require.NoError(t, err)

	assert.Equal(t, 7, c.Value(components.Month))
	assert.Equal(t, 1, c.Value(components.Day))
}

func TestAtWeekdayRejectsBadInput(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := AtWeekday(ref, 7, ModifierNext)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))

	_, err = AtWeekday(ref, -1, ModifierThis)
	require.Error(t, err)

	_, err = AtWeekday(ref, 3, Modifier("soon"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfRange))
}
