package parse

import (
	"net/url"
	"strings"
)

// DisplayName derives a human-readable file name from a URL: the last
// path segment, with query and fragment stripped and percent-encoding
// decoded. Returns fallback when the URL cannot be parsed or the
// segment comes out empty. The result is derived once at task creation
// and never recomputed.
func DisplayName(rawURL, fallback string) string {
	parsed, err := url.ParseRequestURI(rawURL) // Stricter parsing, requires a scheme
	if err != nil {
		return fallback
	}

	// Work on the escaped path so a literal %2F inside a segment does
	// not split it before decoding
	segment := parsed.EscapedPath()
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}

	decoded, err := url.PathUnescape(segment)
	if err != nil || decoded == "" {
		return fallback
	}
	return decoded
}

// HasAllowedScheme reports whether raw begins with one of the allowed
// scheme prefixes (e.g. "https://"). The scheme comparison is
// case-insensitive. Reachability is not checked here.
func HasAllowedScheme(raw string, schemes []string) bool {
	for _, scheme := range schemes {
		prefix := scheme + "://"
		if len(raw) >= len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}
