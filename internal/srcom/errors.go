package srcom

import (
	"errors"
	"fmt"
)

// StatusError represents a non-2xx answer from the speedrun.com API.
//
// HTTP-level failures (bad request, not found, rate limited) get the
// same treatment as transport failures: the current cycle is aborted
// and the next scheduled cycle retries naturally. The typed error
// keeps the status and URL available for the log line.
type StatusError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int

	// URL is the request URL that failed.
	URL string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("speedrun.com API returned status %d for %s", e.StatusCode, e.URL)
}

// IsStatusError reports whether err is (or wraps) a StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
