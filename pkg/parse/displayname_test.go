package parse

import "testing"

const fallback = "document.pdf"

func TestDisplayName_LastSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "PlainFile",
			input:    "https://host/path/report.pdf",
			expected: "report.pdf",
		},
		{
			name:     "QueryAndFragmentStripped",
			input:    "https://host/path/report.pdf?x=1#y",
			expected: "report.pdf",
		},
		{
			name:     "PercentDecoded",
			input:    "https://host/docs/%20name.pdf",
			expected: " name.pdf",
		},
		{
			name:     "SpaceEncoded",
			input:    "https://host/a/annual%20report.pdf",
			expected: "annual report.pdf",
		},
		{
			name:     "NoPath",
			input:    "https://host",
			expected: fallback,
		},
		{
			name:     "TrailingSlash",
			input:    "https://host/dir/",
			expected: fallback,
		},
		{
			name:     "RootOnly",
			input:    "https://host/",
			expected: fallback,
		},
		{
			name:     "DeepPath",
			input:    "http://host/a/b/c/d/file.pdf",
			expected: "file.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.input, fallback); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName_MalformedURL(t *testing.T) {
	malformed := []string{
		"not-a-url",
		"",
		"://missing-scheme",
		"https://host/%zz.pdf", // invalid percent escape
	}

	for _, input := range malformed {
		if got := DisplayName(input, fallback); got != fallback {
			t.Errorf("DisplayName(%q) = %q, want fallback %q", input, got, fallback)
		}
	}
}

func TestHasAllowedScheme(t *testing.T) {
	schemes := []string{"http", "https"}

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"HTTPS", "https://a/x.pdf", true},
		{"HTTP", "http://a/x.pdf", true},
		{"UppercaseScheme", "HTTPS://a/x.pdf", true},
		{"NotAURL", "not-a-url", false},
		{"FTP", "ftp://a/x.pdf", false},
		{"FileScheme", "file:///etc/passwd", false},
		{"Empty", "", false},
		{"SchemeOnlyNoSeparator", "https:a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAllowedScheme(tt.input, schemes); got != tt.expected {
				t.Errorf("HasAllowedScheme(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
