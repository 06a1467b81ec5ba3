package pipeline

import "time"

// Per-file processing statistics.
type FileStats struct {
	// Absolute path to the processed file.
	Path string

	// Image dimensions.
	Width  int
	Height int

	// Time spent in each stage.
	LoadTime    time.Duration
	DenoiseTime time.Duration
	SaveTime    time.Duration
	ReplaceTime time.Duration

	// Total processing time.
	TotalTime time.Duration
}
