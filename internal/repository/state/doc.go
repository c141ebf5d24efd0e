// Package state persists the alarm table between simulator runs.
//
// It defines the Repository interface and a JSON file implementation with
// range validation on load, so a damaged file cannot put the face outside
// its value domains.
package state
