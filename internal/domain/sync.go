package domain

import "time"

// SyncStats holds counters for one full stage+import pass.
type SyncStats struct {
	Branches         int
	Summaries        int
	New              int
	Changed          int
	Unchanged        int
	Requeued         int
	Imported         int
	Failed           int
	Skipped          int
	ImagesDownloaded int
	ImageFailures    int
	Published        int
	Duration         time.Duration
}

// Failures reports whether the run left anything behind that a caller should
// surface through a non-zero exit code.
func (s *SyncStats) Failures() bool {
	return s.Failed > 0
}
