package twitch

import (
	"errors"
	"fmt"
)

// AuthError represents an authentication or authorization failure
// against the Twitch API: a failed token grant, an expired token, or
// a request Twitch refused outright.
//
// The rule layer treats these as inconclusive (fail-open); they are
// surfaced as a typed error so callers can log them distinctly from
// plain transport failures.
type AuthError struct {
	// StatusCode is the HTTP status Twitch answered with.
	StatusCode int

	// Operation names the failed call ("token refresh", "video lookup").
	Operation string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("twitch %s failed: status %d", e.Operation, e.StatusCode)
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
