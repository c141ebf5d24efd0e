package alarmface

import (
	"time"

	"github.com/lcdwatch/alarm-face/internal/face"
)

// fakeDisplay records writes so tests can assert on the rendered line,
// indicators and pixels.
type fakeDisplay struct {
	line       [16]byte
	colon      bool
	indicators map[face.Indicator]bool
	pixels     map[[2]int]bool
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{
		indicators: make(map[face.Indicator]bool),
		pixels:     make(map[[2]int]bool),
	}
	for i := range d.line {
		d.line[i] = ' '
	}

	return d
}

func (d *fakeDisplay) WriteString(s string, pos int) {
	copy(d.line[pos:], s)

	// A full-line write refreshes the segment data of every character
	// position, dropping bare pixel writes the way the hardware does.
	if pos == 0 {
		d.pixels = make(map[[2]int]bool)
	}
}

func (d *fakeDisplay) SetColon()                       { d.colon = true }
func (d *fakeDisplay) ClearColon()                     { d.colon = false }
func (d *fakeDisplay) SetIndicator(i face.Indicator)   { d.indicators[i] = true }
func (d *fakeDisplay) ClearIndicator(i face.Indicator) { d.indicators[i] = false }
func (d *fakeDisplay) SetPixel(com, seg int)           { d.pixels[[2]int{com, seg}] = true }
func (d *fakeDisplay) ClearPixel(com, seg int)         { delete(d.pixels, [2]int{com, seg}) }
func (d *fakeDisplay) mainLine() string                { return string(d.line[:10]) }
func (d *fakeDisplay) indicator(i face.Indicator) bool { return d.indicators[i] }

// fakeBuzzer records played notes without waiting.
type fakeBuzzer struct {
	notes []playedNote
}

type playedNote struct {
	freq float64
	d    time.Duration
}

func (b *fakeBuzzer) PlayNote(freq float64, d time.Duration) {
	b.notes = append(b.notes, playedNote{freq: freq, d: d})
}

// fakeClock returns a settable instant.
type fakeClock struct {
	now face.DateTime
}

func (c *fakeClock) Now() face.DateTime { return c.now }

// fakeSettings is an in-memory settings register.
type fakeSettings struct {
	mode24h      bool
	alarmEnabled bool
	setCalls     int
}

func (s *fakeSettings) ClockMode24h() bool { return s.mode24h }

func (s *fakeSettings) SetAlarmEnabled(enabled bool) {
	s.alarmEnabled = enabled
	s.setCalls++
}

// fakeHost wires the fakes together and records scheduling calls.
type fakeHost struct {
	display  *fakeDisplay
	buzzer   *fakeBuzzer
	clock    *fakeClock
	settings *fakeSettings

	tickHz       int
	illuminated  int
	ledOff       int
	nextFace     int
	movedToFace  []int
	beepRounds   []int
	beepFreqs    []float64
	backupStores int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		display:  newFakeDisplay(),
		buzzer:   &fakeBuzzer{},
		clock:    &fakeClock{},
		settings: &fakeSettings{mode24h: true},
		tickHz:   1,
	}
}

func (h *fakeHost) Display() face.Display   { return h.display }
func (h *fakeHost) Buzzer() face.Buzzer     { return h.buzzer }
func (h *fakeHost) Clock() face.Clock       { return h.clock }
func (h *fakeHost) Settings() face.Settings { return h.settings }

func (h *fakeHost) RequestTickFrequency(hz int) { h.tickHz = hz }
func (h *fakeHost) Illuminate()                 { h.illuminated++ }
func (h *fakeHost) SetLEDOff()                  { h.ledOff++ }
func (h *fakeHost) MoveToNextFace()             { h.nextFace++ }
func (h *fakeHost) MoveToFace(index int)        { h.movedToFace = append(h.movedToFace, index) }
func (h *fakeHost) StoreBackupData()            { h.backupStores++ }

func (h *fakeHost) PlayAlarmBeeps(rounds int, freq float64) {
	h.beepRounds = append(h.beepRounds, rounds)
	h.beepFreqs = append(h.beepFreqs, freq)
}

// newTestFace returns a face wired to a fresh fake host.
func newTestFace() (*Face, *fakeHost) {
	h := newFakeHost()
	f := New()
	f.Setup(h)

	return f, h
}

// press dispatches a single event without a blink phase.
func press(f *Face, kind face.EventKind) {
	f.Loop(face.Event{Kind: kind})
}
