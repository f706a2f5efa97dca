package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops dates.
	LayoutCompactWidth = 80

	// TableWidth is the width of the centered timetable box.
	TableWidth = 44
)

// Log display limits.
const (
	// LogTailLines is how many lines of the log file the log view reads.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
