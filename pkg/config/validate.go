package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// AllowedSchemes
	if len(c.AllowedSchemes) == 0 {
		c.AllowedSchemes = []string{"http", "https"}
	}
	for i, scheme := range c.AllowedSchemes {
		cleaned := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(scheme), "://"))
		if cleaned == "" {
			return warnings, fmt.Errorf("allowed_schemes contains an empty entry")
		}
		if cleaned != scheme {
			warnings = append(warnings, fmt.Sprintf(
				"allowed_schemes entry %q normalized to %q", scheme, cleaned))
			c.AllowedSchemes[i] = cleaned
		}
	}

	// DefaultDisplayName
	if c.DefaultDisplayName == "" {
		c.DefaultDisplayName = "document.pdf"
	}

	// ExportFilename
	if c.ExportFilename == "" {
		c.ExportFilename = "results.csv"
	}

	// LogLevel
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.validateHTTPClientSettings()

	return warnings, nil
}

// validateHTTPClientSettings applies defaults to HTTP client settings.
func (c *AppConfig) validateHTTPClientSettings() {
	h := &c.HTTPClientSettings
	if h.Timeout < 0 {
		// Negative means misconfigured; zero stays zero (no timeout, a
		// hung fetch stalls the run and that is the documented tradeoff)
		h.Timeout = 0
	}
	if h.MaxIdleConns <= 0 {
		h.MaxIdleConns = 100
	}
	if h.MaxIdleConnsPerHost <= 0 {
		h.MaxIdleConnsPerHost = 2
	}
	if h.IdleConnTimeout <= 0 {
		h.IdleConnTimeout = 90 * time.Second
	}
	if h.TLSHandshakeTimeout <= 0 {
		h.TLSHandshakeTimeout = 10 * time.Second
	}
	if h.ExpectContinueTimeout <= 0 {
		h.ExpectContinueTimeout = 1 * time.Second
	}
	if h.DialerTimeout <= 0 {
		h.DialerTimeout = 15 * time.Second
	}
	if h.DialerKeepAlive <= 0 {
		h.DialerKeepAlive = 30 * time.Second
	}
}
