package models

import (
	"strconv"
	"time"
)

// Task is one URL's journey through download-and-count. Status and its
// payload fields move together: PageCount is meaningful only when the
// task is completed, Error only when it is failed. All mutation goes
// through the registry so that coupling holds everywhere.
type Task struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	DisplayName string     `json:"display_name"`
	Status      TaskStatus `json:"status"`
	PageCount   int        `json:"page_count,omitempty"` // Set only when Status == StatusCompleted
	Error       string     `json:"error,omitempty"`      // Set only when Status == StatusFailed
	AddedAt     time.Time  `json:"added_at"`
}

// Fixed page-count cell values for tasks that have not completed
const (
	ResultCellError   = "Error"
	ResultCellPending = "Pending"
)

// ResultRecord is the export projection of a Task
type ResultRecord struct {
	FileName  string `json:"file_name"`
	URL       string `json:"url"`
	PageCount string `json:"page_count"`
}

// Result projects the task into its export record. The page-count cell
// carries the integer count for a completed task, "Error" for a failed
// one and "Pending" for anything still in flight or never attempted.
func (t Task) Result() ResultRecord {
	rec := ResultRecord{
		FileName: t.DisplayName,
		URL:      t.URL,
	}
	switch t.Status {
	case StatusCompleted:
		rec.PageCount = strconv.Itoa(t.PageCount)
	case StatusFailed:
		rec.PageCount = ResultCellError
	default:
		rec.PageCount = ResultCellPending
	}
	return rec
}
