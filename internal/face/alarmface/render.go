package alarmface

import (
	"fmt"

	"github.com/lcdwatch/alarm-face/internal/domain/alarm"
	"github.com/lcdwatch/alarm-face/internal/face"
)

// blinkIdx and blinkIdx2 give, per setting stage, the first and second
// character positions of the field under edit. Line layout:
// day label (0-1), slot number (2-3), hour (4-5), minute (6-7),
// space (8), beep count (9).
//
// The StageBeeps entry doubles as the positions blanked outside setting
// mode, so the beep count is never shown while browsing; sharing the
// table is intentional.
var (
	blinkIdx  = [stageCount]int{2, 0, 4, 6, 8, 9}
	blinkIdx2 = [stageCount]int{3, 1, 5, 7, 8, 9}
)

// pitchPixels holds the (com, seg) address of the indicator segment lit
// per pitch level; editing the pitch shows one to three lit segments.
var pitchPixels = [3][2]int{{0, 3}, {1, 3}, {2, 2}}

// draw renders the current state onto the host display. Subsecond is the
// host blink phase; fields under edit are blanked on odd phases.
func (f *Face) draw(subsecond int) {
	d := f.host.Display()
	s := &f.slots[f.slotIdx]

	// The day label only shows while setting; otherwise the slot label
	// placeholder fills the position.
	label := alarm.UnsetLabel
	if f.isSetting {
		label = s.Day.Label()
	}

	h := int(s.Hour)
	if !f.host.Settings().ClockMode24h() {
		if h > 12 {
			d.SetIndicator(face.IndicatorPM)

			h -= 12
		} else {
			d.ClearIndicator(face.IndicatorPM)
		}
	}

	buf := []byte(fmt.Sprintf("%s%2d%2d%02d %1d", label, f.slotIdx+1, h, s.Minute, s.Beeps+1))

	if !f.isSetting {
		buf[blinkIdx[StageBeeps]] = ' '
		buf[blinkIdx2[StageBeeps]] = ' '
	}

	if f.isSetting && subsecond%2 == 1 {
		buf[blinkIdx[f.stage]] = ' '
		buf[blinkIdx2[f.stage]] = ' '
	}

	d.WriteString(string(buf), 0)

	// Pitch level bar, blinking along with the pitch stage.
	if f.isSetting && (subsecond%2 == 0 || f.stage != StagePitch) {
		for i := 0; i <= int(s.Pitch) && i < len(pitchPixels); i++ {
			d.SetPixel(pitchPixels[i][0], pitchPixels[i][1])
		}
	}

	if s.Enabled {
		d.SetIndicator(face.IndicatorBell)
	} else {
		d.ClearIndicator(face.IndicatorBell)
	}
}
