package alarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultSlot verifies the initial values of a freshly defaulted slot.
func TestDefaultSlot(t *testing.T) {
	t.Parallel()

	s := DefaultSlot()
	require.Equal(t, EachDay, s.Day)
	require.Equal(t, uint8(5), s.Beeps)
	require.Equal(t, PitchMedium, s.Pitch)
	require.Equal(t, uint8(0), s.Hour)
	require.Equal(t, uint8(0), s.Minute)
	require.False(t, s.Enabled)
}

// TestSlotReset verifies the one-time erase contract.
func TestSlotReset(t *testing.T) {
	t.Parallel()

	s := Slot{
		Hour:    7,
		Minute:  30,
		Day:     OneTime,
		Pitch:   PitchHigh,
		Beeps:   8,
		Enabled: true,
	}

	s.Reset()

	require.Equal(t, EachDay, s.Day)
	require.Equal(t, uint8(0), s.Hour)
	require.Equal(t, uint8(0), s.Minute)
	require.False(t, s.Enabled)

	// Pitch and beep count survive the erase.
	require.Equal(t, PitchHigh, s.Pitch)
	require.Equal(t, uint8(8), s.Beeps)
}

// TestFieldWraparound checks that every advance operation stays within its
// value range and wraps via modulo.
func TestFieldWraparound(t *testing.T) {
	t.Parallel()

	var s Slot

	s.Hour = 23
	s.NextHour()
	require.Equal(t, uint8(0), s.Hour)

	s.Minute = 59
	s.NextMinute()
	require.Equal(t, uint8(0), s.Minute)

	s.Day = Weekend
	s.NextDay()
	require.Equal(t, Monday, s.Day)

	s.Pitch = PitchHigh
	s.NextPitch()
	require.Equal(t, PitchLow, s.Pitch)

	s.Beeps = MaxBeepRounds - 1
	s.NextBeeps()
	require.Equal(t, uint8(0), s.Beeps)
}

// TestDayCycleLength walks the day pattern cycle and checks it closes after
// exactly DayStates steps.
func TestDayCycleLength(t *testing.T) {
	t.Parallel()

	d := Monday
	for i := 0; i < DayStates; i++ {
		d = d.Next()
	}

	require.Equal(t, Monday, d)
}

// TestJumpHour checks the half-day boundary jump.
func TestJumpHour(t *testing.T) {
	t.Parallel()

	cases := map[uint8]uint8{
		0:  12,
		7:  12,
		11: 12,
		12: 0,
		13: 0,
		23: 0,
	}
	for from, want := range cases {
		s := Slot{Hour: from}
		s.JumpHour()
		require.Equal(t, want, s.Hour, "hour jump from %d", from)
	}
}

// TestJumpMinute checks the quarter-hour boundary jump.
func TestJumpMinute(t *testing.T) {
	t.Parallel()

	cases := map[uint8]uint8{
		0:  15,
		5:  15,
		15: 30,
		44: 45,
		50: 0,
		59: 0,
	}
	for from, want := range cases {
		s := Slot{Minute: from}
		s.JumpMinute()
		require.Equal(t, want, s.Minute, "minute jump from %d", from)
	}
}

// TestDayMatches covers single weekdays and the workday/weekend groupings.
func TestDayMatches(t *testing.T) {
	t.Parallel()

	require.True(t, Tuesday.Matches(1))
	require.False(t, Tuesday.Matches(2))

	for weekday := 0; weekday < 7; weekday++ {
		require.Equal(t, weekday < 5, Workday.Matches(weekday), "workday vs weekday %d", weekday)
		require.Equal(t, weekday >= 5, Weekend.Matches(weekday), "weekend vs weekday %d", weekday)
	}

	// EachDay and OneTime are resolved by the evaluator, not the pattern.
	require.False(t, EachDay.Matches(3))
	require.False(t, OneTime.Matches(3))
}

// TestDayLabels verifies the display abbreviations line up with the pattern
// values.
func TestDayLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "MO", Monday.Label())
	require.Equal(t, "SU", Sunday.Label())
	require.Equal(t, "ED", EachDay.Label())
	require.Equal(t, "1t", OneTime.Label())
	require.Equal(t, "MF", Workday.Label())
	require.Equal(t, "WN", Weekend.Label())
}
