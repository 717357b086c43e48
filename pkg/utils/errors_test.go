package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestCategorizeError_Nil(t *testing.T) {
	if got := CategorizeError(nil); got != "None" {
		t.Errorf("CategorizeError(nil) = %q, want %q", got, "None")
	}
}

func TestCategorizeError_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Client404", fmt.Errorf("%w: HTTP 404: Failed to download", ErrClientHTTPError), "HTTP_404"},
		{"Client403", fmt.Errorf("%w: HTTP 403: Failed to download", ErrClientHTTPError), "HTTP_403"},
		{"ClientGeneric", fmt.Errorf("%w: HTTP 418: Failed to download", ErrClientHTTPError), "HTTP_4xx"},
		{"Server", fmt.Errorf("%w: HTTP 503: Failed to download", ErrServerHTTPError), "HTTP_5xx"},
		{"OtherStatus", fmt.Errorf("%w: HTTP 301: Failed to download", ErrOtherHTTPError), "HTTP_OtherStatus"},
		{"InspectEncrypted", fmt.Errorf("%w: file is encrypted", ErrInspection), "Inspect_Encrypted"},
		{"InspectCorrupt", fmt.Errorf("%w: corrupt xref table", ErrInspection), "Inspect_Other"},
		{"RequestCreation", fmt.Errorf("%w: bad url", ErrRequestCreation), "Internal_RequestCreation"},
		{"BodyRead", fmt.Errorf("%w: unexpected EOF", ErrResponseBodyRead), "Network_BodyRead"},
		{"ConfigValidation", fmt.Errorf("%w: bad scheme", ErrConfigValidation), "Config_Validation"},
		{"RunInProgress", ErrRunInProgress, "Registry_RunInProgress"},
		{"TaskNotFound", ErrTaskNotFound, "Registry_TaskNotFound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeError(tt.err); got != tt.expected {
				t.Errorf("CategorizeError(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestCategorizeError_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ContextCanceled", context.Canceled, "System_ContextCanceled"},
		{"ContextDeadline", context.DeadlineExceeded, "System_ContextDeadlineExceeded"},
		{"ConnectionRefused", errors.New("dial tcp 127.0.0.1:1: connection refused"), "Network_ConnectionRefused"},
		{"DNS", errors.New("lookup nosuchhost: no such host"), "Network_DNSLookup"},
		{"TLS", errors.New("tls: handshake failure"), "Network_TLS"},
		{"Unknown", errors.New("something odd"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeError(tt.err); got != tt.expected {
				t.Errorf("CategorizeError(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}
