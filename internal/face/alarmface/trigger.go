package alarmface

import (
	"github.com/lcdwatch/alarm-face/internal/domain/alarm"
)

// WantsBackgroundTask reports whether an enabled slot matches the current
// minute. The host polls it to decide whether to schedule an
// EventBackgroundTask delivery; a true result latches the matching slot
// for the later playback.
//
// At most one alarm fires per wall-clock minute: the minute of the first
// check is latched and repeated polls within it return false. When no
// slot matches, the latch is cleared again so that a poll later in the
// same minute, for example after the user changed a slot, still gets a
// fresh evaluation.
func (f *Face) WantsBackgroundTask() bool {
	now := f.host.Clock().Now()

	if f.minuteHandled && f.handledMinute == now.Minute {
		return false
	}

	f.handledMinute = now.Minute
	f.minuteHandled = true

	for i := range f.slots {
		s := &f.slots[i]

		if !s.Enabled || int(s.Minute) != now.Minute || int(s.Hour) != now.Hour {
			continue
		}

		switch s.Day {
		case alarm.EachDay:
			return f.latch(i)
		case alarm.OneTime:
			// Erase the slot in the same evaluation that reports it.
			s.Reset()

			return f.latch(i)
		default:
			if s.Day.Matches(alarm.Weekday(now.Year, now.Month, now.Day)) {
				return f.latch(i)
			}
		}
	}

	f.minuteHandled = false

	return false
}

// latch records the matched slot for the deferred playback event.
// The lowest matching index wins; scanning stops on the first match.
func (f *Face) latch(i int) bool {
	f.playingIdx = i
	f.log.Debugw("Alarm matched", "slot", i)

	return true
}
