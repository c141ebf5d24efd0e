package alarm

const (
	// SlotCount is the number of independent alarm slots.
	SlotCount = 10
	// MaxBeepRounds is the highest selectable beep-round count. Beeps is
	// stored zero-based, so the stored range is 0 through MaxBeepRounds-1.
	MaxBeepRounds = 9

	hoursPerDay      = 24
	minutesPerHour   = 60
	hoursPerHalfDay  = 12
	minutesPerAdjust = 15
)

// Pitch is the tone level an alarm plays at.
type Pitch uint8

const (
	// PitchLow through PitchHigh select one of the three buzzer notes.
	PitchLow Pitch = iota
	PitchMedium
	PitchHigh

	pitchLevels = 3
)

// pitchFrequencies holds the buzzer frequency in hertz per pitch level:
// the B6, C8 and A8 notes of the stock note table.
var pitchFrequencies = [pitchLevels]float64{1975.53, 4186.01, 7040.00}

// Next returns the following pitch level, wrapping back to low.
func (p Pitch) Next() Pitch {
	return (p + 1) % pitchLevels
}

// Hz returns the buzzer frequency for the level.
func (p Pitch) Hz() float64 {
	return pitchFrequencies[p]
}

// Slot is one of the ten independent alarm configurations.
type Slot struct {
	// Hour is the firing hour, 0 through 23.
	Hour uint8
	// Minute is the firing minute, 0 through 59.
	Minute uint8
	// Day selects the day pattern the slot fires on.
	Day Day
	// Pitch is the tone level the alarm plays at.
	Pitch Pitch
	// Beeps is the stored beep-round count, 0 through 8. One more round
	// than stored is played and displayed.
	Beeps uint8
	// Enabled reports whether the slot takes part in trigger evaluation.
	Enabled bool
}

// DefaultSlot returns a freshly initialised slot: fires every day at
// midnight, medium pitch, six displayed beep rounds, disabled.
func DefaultSlot() Slot {
	return Slot{
		Day:   EachDay,
		Beeps: 5,
		Pitch: PitchMedium,
	}
}

// Reset erases the slot after a one-time firing. The whole update happens
// in one step so a fired one-time alarm is never left half-updated.
func (s *Slot) Reset() {
	s.Day = EachDay
	s.Hour = 0
	s.Minute = 0
	s.Enabled = false
}

// NextDay advances the day pattern by one step of its selection cycle.
func (s *Slot) NextDay() {
	s.Day = s.Day.Next()
}

// NextHour advances the hour by one, wrapping at midnight.
func (s *Slot) NextHour() {
	s.Hour = (s.Hour + 1) % hoursPerDay
}

// NextMinute advances the minute by one, wrapping at the full hour.
func (s *Slot) NextMinute() {
	s.Minute = (s.Minute + 1) % minutesPerHour
}

// JumpHour moves the hour forward to the next half-day boundary,
// so 7 becomes 12 and 13 becomes 0.
func (s *Slot) JumpHour() {
	s.Hour = (s.Hour/hoursPerHalfDay*hoursPerHalfDay + hoursPerHalfDay) % hoursPerDay
}

// JumpMinute moves the minute forward to the next quarter-hour boundary,
// so 50 becomes 0 and 5 becomes 15.
func (s *Slot) JumpMinute() {
	s.Minute = (s.Minute/minutesPerAdjust*minutesPerAdjust + minutesPerAdjust) % minutesPerHour
}

// NextPitch advances the tone level, wrapping back to low.
func (s *Slot) NextPitch() {
	s.Pitch = s.Pitch.Next()
}

// NextBeeps advances the beep-round count, wrapping after nine rounds.
func (s *Slot) NextBeeps() {
	s.Beeps = (s.Beeps + 1) % MaxBeepRounds
}
