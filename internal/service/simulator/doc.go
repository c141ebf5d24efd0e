// Package simulator hosts the alarm face in a terminal.
//
// It implements the face host contract with an in-memory segment LCD, the
// system clock as RTC and a real or silent buzzer, and drives the face
// through a bubbletea program: keys map to the watch buttons, a timer
// delivers ticks at the face-requested frequency, and a once-per-minute
// poll of the background-task predicate schedules alarm playback.
package simulator
