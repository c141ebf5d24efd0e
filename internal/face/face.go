package face

import "time"

// Indicator names a discrete indicator segment on the LCD.
type Indicator uint8

const (
	// IndicatorSignal is the hourly-signal indicator.
	IndicatorSignal Indicator = iota
	// IndicatorBell shows that an alarm is set.
	IndicatorBell
	// IndicatorPM marks the afternoon in 12-hour display mode.
	IndicatorPM
	// IndicatorLap is the lap indicator of the stopwatch region.
	IndicatorLap
)

// DateTime is a civil calendar value as produced by the host RTC.
// No timezone is attached; the RTC keeps local civil time.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Display is the segment LCD a host renders faces onto.
type Display interface {
	// WriteString places s on the display starting at character position pos.
	WriteString(s string, pos int)
	// SetColon and ClearColon control the colon between hour and minute.
	SetColon()
	ClearColon()
	SetIndicator(i Indicator)
	ClearIndicator(i Indicator)
	// SetPixel lights a single segment addressed by its common and segment
	// pins, for marks outside the character positions.
	SetPixel(com, seg int)
	ClearPixel(com, seg int)
}

// Buzzer plays single notes synchronously.
type Buzzer interface {
	// PlayNote sounds freq hertz for the duration; a frequency of zero
	// rests for the duration instead.
	PlayNote(freq float64, d time.Duration)
}

// Clock reads the host RTC.
type Clock interface {
	Now() DateTime
}

// Settings is the host's persisted settings register as visible to faces.
type Settings interface {
	// ClockMode24h reports whether hours are displayed 0-23.
	ClockMode24h() bool
	// SetAlarmEnabled records the aggregate "any alarm set" bit that other
	// faces read to show the bell indicator.
	SetAlarmEnabled(enabled bool)
}

// Host groups the services the event-dispatch framework provides to the
// active face.
type Host interface {
	Display() Display
	Buzzer() Buzzer
	Clock() Clock
	Settings() Settings

	// RequestTickFrequency asks for periodic tick events at hz per second.
	// Hosts support 1 Hz and a faster 4 Hz refresh for setting modes.
	RequestTickFrequency(hz int)
	// Illuminate turns the backlight on for the host-configured duration.
	Illuminate()
	// SetLEDOff forces the backlight off.
	SetLEDOff()
	// MoveToNextFace advances to the next face in the rotation.
	MoveToNextFace()
	// MoveToFace jumps to the face at the given index.
	MoveToFace(index int)
	// PlayAlarmBeeps plays the alarm signal: rounds repetitions at freq
	// hertz. The call is synchronous and has no cancellation path.
	PlayAlarmBeeps(rounds int, freq float64)
	// StoreBackupData flushes the settings register to backup memory.
	StoreBackupData()
}

// EventKind discriminates the discrete events a host dispatches to faces.
type EventKind uint8

const (
	// EventNone is the zero event and is never dispatched.
	EventNone EventKind = iota
	// EventActivate is delivered right after the face becomes visible.
	EventActivate
	// EventTick is the periodic callback at the requested tick frequency.
	EventTick
	// EventLightButtonDown fires when the light button is pressed.
	EventLightButtonDown
	// EventLightButtonUp fires when the light button is released.
	EventLightButtonUp
	// EventLightLongPress fires when the light button is held.
	EventLightLongPress
	// EventAlarmButtonUp fires when the alarm button is released.
	EventAlarmButtonUp
	// EventAlarmLongPress fires when the alarm button is held.
	EventAlarmLongPress
	// EventBackgroundTask is delivered after the face asked for a
	// background task via WantsBackgroundTask.
	EventBackgroundTask
	// EventModeButtonUp fires when the mode button is released.
	EventModeButtonUp
	// EventTimeout fires when the host-side inactivity timeout elapses.
	EventTimeout
	// EventLowEnergyUpdate is the once-a-minute tick of low energy mode.
	EventLowEnergyUpdate
)

// Event is one dispatched occurrence. Subsecond is the host's blink phase
// within the current second, 0 through the tick frequency minus one.
type Event struct {
	Kind      EventKind
	Subsecond int
}

// Face is a single watch face plugin. The host dispatches one call at a
// time and each call runs to completion, so implementations need no
// internal locking.
type Face interface {
	// Setup wires the host services. It is called once globally before
	// the face is first shown; repeated calls must not reset face state.
	Setup(host Host)
	// Activate is called every time the face becomes visible.
	Activate()
	// Resign is called when the host moves to another face.
	Resign()
	// WantsBackgroundTask is polled by the host, intended once per
	// wall-clock minute, to decide whether to schedule an
	// EventBackgroundTask delivery.
	WantsBackgroundTask() bool
	// Loop handles one event and reports whether it was consumed.
	Loop(e Event) bool
}
