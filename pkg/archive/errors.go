package archive

import (
	"errors"
	"fmt"
	"net/http"
)

// Standardized error types for consumers of this package. These abstract the
// raw HTTP status codes into the outcomes callers actually branch on.
var (
	// ErrNotFound is returned when a resource or metadata key does not exist.
	// Not-found is an expected outcome for most reads and is never logged as
	// an error by this package.
	ErrNotFound = errors.New("archive: not found")

	// ErrConflict is returned when a conditional write is rejected because
	// the resource changed since it was read.
	ErrConflict = errors.New("archive: conditional request rejected")
)

// StatusError is returned for any non-2xx response that does not map to one
// of the sentinel errors above.
type StatusError struct {
	StatusCode int
	Route      string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("archive: http %d for %s", e.StatusCode, e.Route)
}

// translateStatus converts an HTTP status code into a standardized error.
// 2xx translates to nil.
func translateStatus(route string, code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", route, ErrNotFound)
	case code == http.StatusConflict, code == http.StatusPreconditionFailed:
		return fmt.Errorf("%s: %w", route, ErrConflict)
	default:
		return &StatusError{StatusCode: code, Route: route}
	}
}

// IsEncodingRejection reports whether err looks like the archive refusing a
// request body it could not parse. Used by callers that can re-encode the
// payload in a legacy form and try again.
func IsEncodingRejection(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusBadRequest || se.StatusCode == http.StatusUnsupportedMediaType
}
