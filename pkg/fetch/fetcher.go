package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"doc-counter/pkg/utils"
)

// StatusError is returned for a successful HTTP exchange whose status
// code signals failure. Its message is the one recorded on the task.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: Failed to download", e.StatusCode)
}

// Unwrap maps the status class onto the shared sentinels so callers can
// categorize with errors.Is.
func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode >= 500:
		return utils.ErrServerHTTPError
	case e.StatusCode >= 400:
		return utils.ErrClientHTTPError
	}
	return utils.ErrOtherHTTPError
}

// Result carries the fully materialized document bytes of a successful fetch
type Result struct {
	Body       []byte
	StatusCode int
}

// Fetcher performs single-shot document downloads using a configured
// http.Client. There is deliberately no retry loop here: a failed task
// stays in the queue and becomes eligible again on the next batch run.
type Fetcher struct {
	client *http.Client
	log    *logrus.Logger
}

// NewFetcher creates a new Fetcher instance
func NewFetcher(client *http.Client, log *logrus.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		log:    log,
	}
}

// Fetch downloads url and materializes the full response body. Any
// response outside 2xx is a failure and yields a *StatusError; network
// errors are returned as-is so their transport text reaches the task.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	reqLog := f.log.WithField("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRequestCreation, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		reqLog.Warnf("Network error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	statusCode := resp.StatusCode
	resLog := reqLog.WithFields(logrus.Fields{"status_code": statusCode, "status": resp.Status})

	if statusCode < 200 || statusCode >= 300 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		resLog.Warn("Non-success status")
		return nil, &StatusError{StatusCode: statusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		resLog.Warnf("Failed reading response body: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrResponseBodyRead, err)
	}

	resLog.WithField("bytes", len(body)).Debug("Successfully fetched")
	return &Result{Body: body, StatusCode: statusCode}, nil
}
