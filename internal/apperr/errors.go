// Package apperr defines the error kinds shared across deckdoctor.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a saved deck directory or file is missing.
	ErrNotFound = errors.New("not found")

	// ErrNoCommander is returned when an operation needs a commander and the
	// deck has none.
	ErrNoCommander = errors.New("deck has no commander")
)

// RemoteFetchError reports a non-success HTTP response from Moxfield or EDHREC.
type RemoteFetchError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("fetch %s: HTTP %d: %s", e.URL, e.StatusCode, e.Status)
}

// IsRemoteFetch reports whether err wraps a RemoteFetchError.
func IsRemoteFetch(err error) bool {
	var rfe *RemoteFetchError
	return errors.As(err, &rfe)
}
