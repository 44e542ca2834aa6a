package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized marks 401 responses: the bearer token is missing,
	// invalid or expired.
	ErrUnauthorized = errors.New("remote store unauthorized")
	// ErrPermissionDenied marks 403 responses.
	ErrPermissionDenied = errors.New("remote store permission denied")
	// ErrNotFound marks 404 responses on objects that should exist.
	ErrNotFound = errors.New("remote object not found")
	// ErrNetwork marks transport-level failures (DNS, TLS, timeouts).
	ErrNetwork = errors.New("network failure")
)

// RemoteError carries the HTTP status of a remote failure that does not map
// onto one of the sentinel errors above.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote store error: http %d", e.Status)
	}
	return fmt.Sprintf("remote store error: http %d: %s", e.Status, e.Body)
}
