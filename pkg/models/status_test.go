package models

import "testing"

func TestTaskStatus_String(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected string
	}{
		{StatusIdle, "idle"},
		{StatusDownloading, "downloading"},
		{StatusAnalyzing, "analyzing"},
		{StatusCompleted, "completed"},
		{StatusFailed, "failed"},
		{TaskStatus(""), "unset"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("TaskStatus(%q).String() = %q, want %q", string(tt.status), got, tt.expected)
		}
	}
}

func TestTaskStatus_IsValid(t *testing.T) {
	valid := []TaskStatus{StatusIdle, StatusDownloading, StatusAnalyzing, StatusCompleted, StatusFailed}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []TaskStatus{"", "pending", "running", "bogus"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		terminal bool
	}{
		{StatusIdle, false},
		{StatusDownloading, false},
		{StatusAnalyzing, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("TaskStatus(%q).IsTerminal() = %v, want %v", string(tt.status), got, tt.terminal)
		}
	}
}

func TestTaskStatus_InFlight(t *testing.T) {
	inFlight := []TaskStatus{StatusDownloading, StatusAnalyzing}
	for _, s := range inFlight {
		if !s.InFlight() {
			t.Errorf("expected %q to be in flight", s)
		}
	}

	atRest := []TaskStatus{StatusIdle, StatusCompleted, StatusFailed}
	for _, s := range atRest {
		if s.InFlight() {
			t.Errorf("expected %q not to be in flight", s)
		}
	}
}
