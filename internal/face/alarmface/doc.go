// Package alarmface implements the ten-slot multi-alarm watch face.
//
// Each slot carries a firing time, a day pattern (single weekday, every
// day, one-time, workdays or weekends), a tone pitch and a beep-round
// count. In normal mode the alarm button browses the slots and a long
// press toggles the shown slot. The light button enters a six-stage
// setting cycle (slot, day, hour, minute, pitch, beeps); within a stage
// the alarm button advances the edited field with modulo wraparound.
//
// Trigger evaluation runs through the host's background-task poll: at most
// one slot fires per wall-clock minute, the lowest matching index wins,
// and a matched one-time slot erases itself in the same evaluation.
package alarmface
