package remote

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup for a name the reference catalog does not know.
var ErrNotFound = errors.New("not found")

// NetworkError reports a request that failed in transport or came back with
// an error status.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
