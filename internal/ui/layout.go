package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show the rating column.
	LayoutWideWidth = 120
)

// Timing and size constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = 500 * time.Millisecond

	// ActivityLineLimit is the number of log lines the activity view reads.
	ActivityLineLimit = 500

	statusTTL = 4 * time.Second
)
