package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_JSONRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second).UTC()
	task := Task{
		ID:          "abc-123",
		URL:         "https://example.com/report.pdf",
		DisplayName: "report.pdf",
		Status:      StatusCompleted,
		PageCount:   42,
		AddedAt:     now,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var got Task
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, task, got)
}

func TestTask_OmitEmpty(t *testing.T) {
	task := Task{
		ID:          "abc-123",
		URL:         "https://example.com/report.pdf",
		DisplayName: "report.pdf",
		Status:      StatusIdle,
		AddedAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	raw := string(data)
	assert.NotContains(t, raw, "page_count")
	assert.NotContains(t, raw, "error")
}

func TestTask_Result(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected ResultRecord
	}{
		{
			name: "Completed",
			task: Task{DisplayName: "report.pdf", URL: "https://a/report.pdf", Status: StatusCompleted, PageCount: 7},
			expected: ResultRecord{
				FileName:  "report.pdf",
				URL:       "https://a/report.pdf",
				PageCount: "7",
			},
		},
		{
			name: "Failed",
			task: Task{DisplayName: "x.pdf", URL: "https://a/x.pdf", Status: StatusFailed, Error: "HTTP 404: Failed to download"},
			expected: ResultRecord{
				FileName:  "x.pdf",
				URL:       "https://a/x.pdf",
				PageCount: ResultCellError,
			},
		},
		{
			name: "Idle",
			task: Task{DisplayName: "y.pdf", URL: "https://a/y.pdf", Status: StatusIdle},
			expected: ResultRecord{
				FileName:  "y.pdf",
				URL:       "https://a/y.pdf",
				PageCount: ResultCellPending,
			},
		},
		{
			name: "Downloading",
			task: Task{DisplayName: "z.pdf", URL: "https://a/z.pdf", Status: StatusDownloading},
			expected: ResultRecord{
				FileName:  "z.pdf",
				URL:       "https://a/z.pdf",
				PageCount: ResultCellPending,
			},
		},
		{
			name: "Analyzing",
			task: Task{DisplayName: "w.pdf", URL: "https://a/w.pdf", Status: StatusAnalyzing},
			expected: ResultRecord{
				FileName:  "w.pdf",
				URL:       "https://a/w.pdf",
				PageCount: ResultCellPending,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.Result())
		})
	}
}

func TestTask_ResultCompletedZeroPages(t *testing.T) {
	// An empty-but-valid document legitimately counts zero pages.
	task := Task{DisplayName: "empty.pdf", URL: "https://a/empty.pdf", Status: StatusCompleted, PageCount: 0}
	assert.Equal(t, "0", task.Result().PageCount)
}
