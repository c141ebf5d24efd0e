package simulator

import (
	"time"

	"go.uber.org/zap"

	"github.com/lcdwatch/alarm-face/internal/face"
	"github.com/lcdwatch/alarm-face/internal/logger"
)

// lcdWidth is the number of character positions on the main line.
const lcdWidth = 10

// backlightDuration is how long the backlight stays on after Illuminate.
const backlightDuration = 2 * time.Second

// lcd is the in-memory segment display the terminal view renders from.
type lcd struct {
	line       [lcdWidth]byte
	colon      bool
	indicators map[face.Indicator]bool
	pixels     map[[2]int]bool
}

func newLCD() *lcd {
	d := &lcd{
		indicators: make(map[face.Indicator]bool),
		pixels:     make(map[[2]int]bool),
	}
	for i := range d.line {
		d.line[i] = ' '
	}

	return d
}

// WriteString places s starting at character position pos. A full-line
// write refreshes the segment data of every character position, which
// drops bare pixel writes the same way the hardware does.
func (d *lcd) WriteString(s string, pos int) {
	if pos < 0 || pos >= lcdWidth {
		return
	}

	copy(d.line[pos:], s)

	if pos == 0 && len(s) >= lcdWidth {
		d.pixels = make(map[[2]int]bool)
	}
}

func (d *lcd) SetColon()                       { d.colon = true }
func (d *lcd) ClearColon()                     { d.colon = false }
func (d *lcd) SetIndicator(i face.Indicator)   { d.indicators[i] = true }
func (d *lcd) ClearIndicator(i face.Indicator) { d.indicators[i] = false }
func (d *lcd) SetPixel(com, seg int)           { d.pixels[[2]int{com, seg}] = true }
func (d *lcd) ClearPixel(com, seg int)         { delete(d.pixels, [2]int{com, seg}) }

// Line returns the main line as a string.
func (d *lcd) Line() string {
	return string(d.line[:])
}

// systemClock reads the machine's local civil time, standing in for the
// watch RTC.
type systemClock struct{}

func (systemClock) Now() face.DateTime {
	t := time.Now()

	return face.DateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// settingsRegister models the watch's backup settings register.
type settingsRegister struct {
	clockMode24h bool
	alarmEnabled bool
	flushes      int
}

func (s *settingsRegister) ClockMode24h() bool { return s.clockMode24h }

func (s *settingsRegister) SetAlarmEnabled(enabled bool) { s.alarmEnabled = enabled }

// Host is the simulated watch the face runs on. It is driven from the
// bubbletea loop, so all access is single-threaded like the firmware's
// event dispatch.
type Host struct {
	lcd      *lcd
	buzzer   face.Buzzer
	clock    face.Clock
	settings *settingsRegister
	log      *zap.SugaredLogger

	// tickHz is the tick rate the face asked for, 1 or 4.
	tickHz int
	// litUntil is when the backlight goes dark again.
	litUntil time.Time
	// banner carries a short status note shown under the display, for
	// host actions the simulator cannot perform (face switching).
	banner string
}

// NewHost builds a simulated watch around the provided buzzer and clock.
func NewHost(buzzer face.Buzzer, clock face.Clock, clockMode24h bool) *Host {
	return &Host{
		lcd:      newLCD(),
		buzzer:   buzzer,
		clock:    clock,
		settings: &settingsRegister{clockMode24h: clockMode24h},
		log:      logger.Logger().Named("simulator"),
		tickHz:   1,
	}
}

// Display returns the simulated LCD.
func (h *Host) Display() face.Display { return h.lcd }

// Buzzer returns the simulated buzzer.
func (h *Host) Buzzer() face.Buzzer { return h.buzzer }

// Clock returns the simulated RTC.
func (h *Host) Clock() face.Clock { return h.clock }

// Settings returns the settings register view.
func (h *Host) Settings() face.Settings { return h.settings }

// RequestTickFrequency records the tick rate for the event loop.
func (h *Host) RequestTickFrequency(hz int) {
	if hz < 1 {
		hz = 1
	}

	h.tickHz = hz
}

// Illuminate turns the backlight on for the configured duration.
func (h *Host) Illuminate() {
	h.litUntil = h.nowWall().Add(backlightDuration)
}

// SetLEDOff forces the backlight off.
func (h *Host) SetLEDOff() {
	h.litUntil = time.Time{}
}

// Backlit reports whether the backlight is currently on.
func (h *Host) Backlit() bool {
	return h.nowWall().Before(h.litUntil)
}

// MoveToNextFace is a banner in the simulator: only one face is hosted.
func (h *Host) MoveToNextFace() {
	h.banner = "mode: next face (single-face simulator)"
	h.log.Debug("Face requested next face")
}

// MoveToFace is a banner in the simulator as well.
func (h *Host) MoveToFace(index int) {
	h.banner = "timeout: back to face 0"
	h.log.Debugw("Face requested face jump", "index", index)
}

// PlayAlarmBeeps plays the alarm signal: rounds repetitions of a short
// beep pattern at freq hertz. The call is synchronous with no
// cancellation path, like the firmware sequence player.
func (h *Host) PlayAlarmBeeps(rounds int, freq float64) {
	h.log.Infow("Playing alarm signal", "rounds", rounds, "freq", freq)

	for range rounds {
		for range 4 {
			h.buzzer.PlayNote(freq, 100*time.Millisecond)
			h.buzzer.PlayNote(0, 100*time.Millisecond)
		}

		h.buzzer.PlayNote(0, 300*time.Millisecond)
	}
}

// StoreBackupData flushes the settings register. The simulator has no
// backup memory, so the flush is recorded and logged.
func (h *Host) StoreBackupData() {
	h.settings.flushes++
	h.log.Infow("Settings flushed to backup register", "alarm_enabled", h.settings.alarmEnabled)
}

// AlarmEnabled reports the aggregate "any alarm set" bit of the register.
func (h *Host) AlarmEnabled() bool {
	return h.settings.alarmEnabled
}

// nowWall returns the wall time used for backlight expiry.
func (h *Host) nowWall() time.Time {
	return time.Now()
}
