package simulator

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/lcdwatch/alarm-face/internal/domain/alarm"
	"github.com/lcdwatch/alarm-face/internal/face"
	"github.com/lcdwatch/alarm-face/internal/face/alarmface"
)

// stubBuzzer records notes without sleeping so tests stay fast.
type stubBuzzer struct {
	notes int
}

func (b *stubBuzzer) PlayNote(_ float64, _ time.Duration) { b.notes++ }

// stubClock returns a settable instant.
type stubClock struct {
	now face.DateTime
}

func (c *stubClock) Now() face.DateTime { return c.now }

// newTestModel wires a real alarm face to a simulated host with stubbed
// hardware.
func newTestModel() (Model, *Host, *alarmface.Face, *stubBuzzer, *stubClock) {
	buzzer := &stubBuzzer{}
	clock := &stubClock{now: face.DateTime{Year: 2024, Month: 1, Day: 2, Hour: 7, Minute: 29}}

	h := NewHost(buzzer, clock, true)
	f := alarmface.New()
	f.Setup(h)

	return NewModel(h, f), h, f, buzzer, clock
}

// key wraps a rune into a bubbletea key message.
func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestModelActivationDraws ensures the face rendered on construction.
func TestModelActivationDraws(t *testing.T) {
	t.Parallel()

	_, h, _, _, _ := newTestModel()

	require.Equal(t, "AL 1 000  ", h.lcd.Line())
	require.True(t, h.lcd.colon)
}

// TestModelKeysDriveSettingMode checks the light key enters setting mode
// and raises the tick rate.
func TestModelKeysDriveSettingMode(t *testing.T) {
	t.Parallel()

	m, h, _, _, _ := newTestModel()

	next, _ := m.Update(key('l'))
	m = next.(Model)
	require.Equal(t, 4, h.tickHz)
	require.True(t, h.Backlit())

	// Holding the light button resumes normal mode.
	next, _ = m.Update(key('L'))
	_ = next.(Model)
	require.Equal(t, 1, h.tickHz)
}

// TestModelAlarmKeyBrowsesSlots checks the alarm key advances the shown
// slot number.
func TestModelAlarmKeyBrowsesSlots(t *testing.T) {
	t.Parallel()

	m, h, _, _, _ := newTestModel()

	next, _ := m.Update(key('a'))
	_ = next.(Model)

	require.Equal(t, " 2", h.lcd.Line()[2:4])
}

// TestModelTickAdvancesBlinkPhase verifies the subsecond counter wraps at
// the requested frequency.
func TestModelTickAdvancesBlinkPhase(t *testing.T) {
	t.Parallel()

	m, _, _, _, _ := newTestModel()

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, 0, m.subsecond, "1 Hz keeps phase zero")

	next, _ = m.Update(key('l'))
	m = next.(Model)

	phases := make([]int, 0, 4)
	for range 4 {
		next, _ = m.Update(tickMsg(time.Now()))
		m = next.(Model)
		phases = append(phases, m.subsecond)
	}

	require.Equal(t, []int{1, 2, 3, 0}, phases)
}

// TestModelMinutePollFiresOnce delivers the background task exactly once
// for a matching minute across repeated ticks.
func TestModelMinutePollFiresOnce(t *testing.T) {
	t.Parallel()

	m, _, f, buzzer, clock := newTestModel()

	slots := f.Slots()
	slots[0] = alarm.Slot{Hour: 7, Minute: 30, Day: alarm.EachDay, Beeps: 0, Enabled: true}
	f.SetSlots(slots)

	// Still 07:29: the poll runs but nothing matches.
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	require.Zero(t, buzzer.notes)

	clock.now.Minute = 30

	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	played := buzzer.notes
	require.Positive(t, played, "matching minute plays the signal")

	// Further ticks in the same minute stay quiet.
	next, _ = m.Update(tickMsg(time.Now()))
	_ = next.(Model)
	require.Equal(t, played, buzzer.notes)
}

// TestModelQuitResigns verifies quitting pushes the aggregate flag and
// stops the program.
func TestModelQuitResigns(t *testing.T) {
	t.Parallel()

	m, h, f, _, _ := newTestModel()

	slots := f.Slots()
	slots[4].Enabled = true
	f.SetSlots(slots)

	next, cmd := m.Update(key('q'))
	_ = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, h.AlarmEnabled())
	require.Equal(t, 1, h.settings.flushes)
}
