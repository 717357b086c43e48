package models

// TaskStatus represents a task's position in the download-and-count lifecycle
type TaskStatus string

const (
	StatusIdle        TaskStatus = "idle"        // Queued, not yet attempted (or awaiting retry after a failure)
	StatusDownloading TaskStatus = "downloading" // Fetch in flight
	StatusAnalyzing   TaskStatus = "analyzing"   // Bytes received, page count in progress
	StatusCompleted   TaskStatus = "completed"   // Page count recorded
	StatusFailed      TaskStatus = "failed"      // Download or inspection failed
)

// String implements fmt.Stringer for logging
func (s TaskStatus) String() string {
	if s == "" {
		return "unset"
	}
	return string(s)
}

// IsValid returns true if the status is a known lifecycle value
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusDownloading, StatusAnalyzing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the task needs no further transition within
// the current run. Failed tasks stay in the queue and are eligible again
// on the next run.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// InFlight reports whether the task is currently being processed
func (s TaskStatus) InFlight() bool {
	return s == StatusDownloading || s == StatusAnalyzing
}
