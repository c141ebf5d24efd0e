package simulator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcdwatch/alarm-face/internal/face"
)

// tickMsg is the periodic callback driving face ticks.
type tickMsg time.Time

// Model is the bubbletea model dispatching events to the hosted face.
type Model struct {
	host *Host
	face face.Face

	// subsecond is the blink phase within the current second, wrapping
	// at the requested tick frequency.
	subsecond int

	// lastMinute tracks the minute of the last background-task poll so
	// the predicate is consulted once per wall-clock minute.
	lastMinute  int
	minuteKnown bool
}

// NewModel activates the face on the host and returns the ready model.
func NewModel(h *Host, f face.Face) Model {
	f.Activate()
	f.Loop(face.Event{Kind: face.EventActivate})

	return Model{
		host: h,
		face: f,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd schedules the next tick at the face-requested frequency.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.host.tickHz), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes one message; events reach the face one at a time, so
// the face never sees concurrent calls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.subsecond = (m.subsecond + 1) % m.host.tickHz
		m.face.Loop(face.Event{Kind: face.EventTick, Subsecond: m.subsecond})
		m.pollBackgroundTask()

		return m, m.tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

// handleKey maps terminal keys to watch buttons. Uppercase letters stand
// in for long presses, which a terminal cannot detect natively.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		m.face.Loop(face.Event{Kind: face.EventLightButtonDown, Subsecond: m.subsecond})
		m.face.Loop(face.Event{Kind: face.EventLightButtonUp, Subsecond: m.subsecond})
	case "L":
		m.face.Loop(face.Event{Kind: face.EventLightLongPress, Subsecond: m.subsecond})
	case "a":
		m.face.Loop(face.Event{Kind: face.EventAlarmButtonUp, Subsecond: m.subsecond})
	case "A":
		m.face.Loop(face.Event{Kind: face.EventAlarmLongPress, Subsecond: m.subsecond})
	case "m":
		m.face.Loop(face.Event{Kind: face.EventModeButtonUp, Subsecond: m.subsecond})
	case "t":
		m.face.Loop(face.Event{Kind: face.EventTimeout, Subsecond: m.subsecond})
	case "q", "ctrl+c":
		m.face.Resign()

		return m, tea.Quit
	}

	return m, nil
}

// pollBackgroundTask consults the face's background-task predicate once
// per wall-clock minute and delivers the deferred playback event on a
// match, mirroring the firmware's scheduling split between trigger
// evaluation and tone playback.
func (m *Model) pollBackgroundTask() {
	now := m.host.clock.Now()
	if m.minuteKnown && now.Minute == m.lastMinute {
		return
	}

	m.lastMinute = now.Minute
	m.minuteKnown = true

	if m.face.WantsBackgroundTask() {
		m.face.Loop(face.Event{Kind: face.EventBackgroundTask, Subsecond: m.subsecond})
	}
}
