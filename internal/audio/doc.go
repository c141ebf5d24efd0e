// Package audio implements the face.Buzzer contract on the system audio
// device, synthesising sine tones per note, plus a Silent variant that
// only keeps time.
package audio
