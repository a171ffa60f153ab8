package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteFetchError(t *testing.T) {
	err := fmt.Errorf("moxfield: fetch deck: %w", &RemoteFetchError{
		URL:        "https://api2.moxfield.com/v3/decks/all/abc",
		StatusCode: 404,
		Status:     "404 Not Found",
	})

	assert.True(t, IsRemoteFetch(err))
	assert.Contains(t, err.Error(), "HTTP 404")

	var rfe *RemoteFetchError
	if assert.True(t, errors.As(err, &rfe)) {
		assert.Equal(t, 404, rfe.StatusCode)
	}
}

func TestIsRemoteFetch_OtherErrors(t *testing.T) {
	assert.False(t, IsRemoteFetch(ErrNotFound))
	assert.False(t, IsRemoteFetch(fmt.Errorf("wrapped: %w", ErrNoCommander)))
	assert.False(t, IsRemoteFetch(nil))
}
