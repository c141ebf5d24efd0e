package alarmface

import (
	"time"

	"go.uber.org/zap"

	"github.com/lcdwatch/alarm-face/internal/domain/alarm"
	"github.com/lcdwatch/alarm-face/internal/face"
	"github.com/lcdwatch/alarm-face/internal/logger"
)

// Stage is one sub-step of setting mode.
type Stage uint8

const (
	// StageSlot selects which of the ten slots is edited.
	StageSlot Stage = iota
	// StageDay edits the day pattern.
	StageDay
	// StageHour edits the firing hour.
	StageHour
	// StageMinute edits the firing minute.
	StageMinute
	// StagePitch edits the tone level.
	StagePitch
	// StageBeeps edits the beep-round count.
	StageBeeps

	stageCount = 6
)

// next returns the following stage and whether the cycle wrapped, which
// ends setting mode.
func (s Stage) next() (Stage, bool) {
	if s+1 >= stageCount {
		return StageSlot, true
	}

	return s + 1, false
}

// Tick frequencies requested from the host: the slow normal-mode refresh
// and the fast refresh that drives blinking in setting mode.
const (
	tickNormalHz  = 1
	tickSettingHz = 4
)

// Face is the multi-alarm watch face. A single value owns all state for
// the lifetime of the watch session; the host guarantees one event at a
// time, so no locking is needed.
type Face struct {
	host face.Host
	log  *zap.SugaredLogger

	// slots is the alarm table; index order is the user-visible slot
	// number minus one.
	slots [alarm.SlotCount]alarm.Slot
	// slotIdx is the currently displayed and edited slot.
	slotIdx int

	// isSetting switches between normal mode and the setting cycle.
	isSetting bool
	// stage is the active setting sub-step while isSetting holds.
	stage Stage

	// playingIdx is latched at trigger time for the deferred
	// background-task playback.
	playingIdx int

	// handledMinute and minuteHandled form the per-minute idempotence
	// latch of trigger evaluation: once a check ran for a minute value,
	// further polls in that minute are rejected.
	handledMinute int
	minuteHandled bool

	ready bool
}

// New returns an alarm face with no host attached yet; the host calls
// Setup before dispatching any event.
func New() *Face {
	return &Face{
		log: logger.Logger().Named("alarm-face"),
	}
}

// Setup wires the host services and defaults the slot table. Defaulting
// happens only on the first call, so the table survives face switching
// for the rest of the session.
func (f *Face) Setup(host face.Host) {
	f.host = host
	if f.ready {
		return
	}

	for i := range f.slots {
		f.slots[i] = alarm.DefaultSlot()
	}

	f.ready = true
}

// Activate prepares the display each time the face becomes visible.
func (f *Face) Activate() {
	d := f.host.Display()
	d.WriteString("  ", 8)
	d.ClearIndicator(face.IndicatorLap)
	d.SetColon()
}

// Resign leaves setting mode, pushes the aggregate "any alarm set" bit
// into the host settings and flushes them to backup memory.
func (f *Face) Resign() {
	f.isSetting = false

	anyEnabled := false

	for i := range f.slots {
		if f.slots[i].Enabled {
			anyEnabled = true
			break
		}
	}

	f.host.Settings().SetAlarmEnabled(anyEnabled)
	f.host.SetLEDOff()
	f.host.StoreBackupData()

	f.log.Debugw("Face resigned", "any_enabled", anyEnabled)
}

// Loop handles one host event.
func (f *Face) Loop(e face.Event) bool {
	switch e.Kind {
	case face.EventActivate, face.EventTick:
		f.draw(e.Subsecond)
	case face.EventLightButtonUp:
		f.advanceStage(e.Subsecond)
	case face.EventLightLongPress:
		if f.isSetting {
			f.resumeNormal(e.Subsecond)
		}
	case face.EventAlarmButtonUp:
		f.handleAlarmButton()
		f.draw(e.Subsecond)
	case face.EventAlarmLongPress:
		f.handleAlarmLongPress()
		f.draw(e.Subsecond)
	case face.EventBackgroundTask:
		f.playAlarm()
	case face.EventModeButtonUp:
		f.host.MoveToNextFace()
	case face.EventTimeout:
		f.host.MoveToFace(0)
	default:
		// EventLightButtonDown and EventLowEnergyUpdate need no handling.
	}

	return true
}

// advanceStage moves through the setting cycle on a light button release.
// From normal mode it enters the cycle at slot selection, switches the
// host to the fast refresh and lights the backlight once as a cue.
func (f *Face) advanceStage(subsecond int) {
	if !f.isSetting {
		f.host.Illuminate()

		f.isSetting = true
		f.stage = StageSlot
		f.host.RequestTickFrequency(tickSettingHz)
		f.draw(subsecond)

		return
	}

	next, wrapped := f.stage.next()
	f.stage = next

	if wrapped {
		f.resumeNormal(subsecond)
		return
	}

	f.draw(subsecond)
}

// resumeNormal ends the setting cycle and restores the slow refresh.
func (f *Face) resumeNormal(subsecond int) {
	f.isSetting = false
	f.host.RequestTickFrequency(tickNormalHz)
	f.draw(subsecond)
}

// handleAlarmButton browses slots in normal mode and advances the edited
// field in setting mode.
func (f *Face) handleAlarmButton() {
	if !f.isSetting {
		f.slotIdx = (f.slotIdx + 1) % alarm.SlotCount
		return
	}

	s := &f.slots[f.slotIdx]

	switch f.stage {
	case StageSlot:
		f.slotIdx = (f.slotIdx + 1) % alarm.SlotCount
	case StageDay:
		s.NextDay()
	case StageHour:
		s.NextHour()
	case StageMinute:
		s.NextMinute()
	case StagePitch:
		s.NextPitch()
		f.playPitchSample(s.Pitch)
	case StageBeeps:
		s.NextBeeps()
	}

	f.autoEnable()
}

// handleAlarmLongPress toggles the shown slot in normal mode; in setting
// mode it jumps the time fields to their next coarse boundary.
func (f *Face) handleAlarmLongPress() {
	if !f.isSetting {
		f.slots[f.slotIdx].Enabled = !f.slots[f.slotIdx].Enabled
		return
	}

	s := &f.slots[f.slotIdx]

	switch f.stage {
	case StageHour:
		s.JumpHour()
	case StageMinute:
		s.JumpMinute()
	default:
	}

	f.autoEnable()
}

// autoEnable switches the edited slot on as soon as any of its fields is
// changed. The long press in normal mode is the only way to switch a slot
// off again.
func (f *Face) autoEnable() {
	if f.stage > StageSlot {
		f.slots[f.slotIdx].Enabled = true
	}
}

// playPitchSample sounds a short two-tone confirmation at the newly
// selected pitch so the user hears what they picked.
func (f *Face) playPitchSample(p alarm.Pitch) {
	b := f.host.Buzzer()
	b.PlayNote(p.Hz(), 50*time.Millisecond)
	b.PlayNote(0, 50*time.Millisecond)
	b.PlayNote(p.Hz(), 75*time.Millisecond)
}

// playAlarm plays the signal for the slot latched at trigger time.
func (f *Face) playAlarm() {
	s := &f.slots[f.playingIdx]

	f.log.Debugw("Playing alarm", "slot", f.playingIdx, "rounds", int(s.Beeps)+1)
	f.host.PlayAlarmBeeps(int(s.Beeps)+1, s.Pitch.Hz())
}

// Slots returns a copy of the alarm table for session persistence.
func (f *Face) Slots() [alarm.SlotCount]alarm.Slot {
	return f.slots
}

// SetSlots replaces the alarm table, restoring a persisted session.
func (f *Face) SetSlots(slots [alarm.SlotCount]alarm.Slot) {
	f.slots = slots
}
