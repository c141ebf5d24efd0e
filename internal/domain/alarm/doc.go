// Package alarm contains the core domain types of the multi-alarm face.
//
// It defines Slot (one of the ten alarm configurations), the Day and Pitch
// value types with their wraparound advance semantics, and the pure Weekday
// calculation used by trigger evaluation.
package alarm
