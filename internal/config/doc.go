// Package config loads and stores the simulator settings from a small
// YAML file: clock display mode, state and log file locations, log level
// and sound. Absent files and fields fall back to defaults.
package config
