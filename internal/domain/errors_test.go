package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name    string
		err     *FetchError
		message string
		network bool
	}{
		{
			name:    "transport failure",
			err:     &FetchError{URL: "https://example.com/a.js", Err: cause},
			message: "fetch https://example.com/a.js: connection reset",
			network: true,
		},
		{
			name:    "bad status",
			err:     &FetchError{URL: "https://example.com/a.js", StatusCode: 404},
			message: "fetch https://example.com/a.js: unexpected status 404",
		},
		{
			name:    "body failure after status",
			err:     &FetchError{URL: "https://example.com/a.js", StatusCode: 200, Err: cause},
			message: "fetch https://example.com/a.js: status 200: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.network, tt.err.IsNetwork())
		})
	}
}

func TestCommandMisuseErrors(t *testing.T) {
	assert.ErrorIs(t, ErrAlreadyCapturing, ErrCommandMisuse)
	assert.ErrorIs(t, ErrNotCapturing, ErrCommandMisuse)
	assert.NotErrorIs(t, ErrAlreadyCapturing, ErrNotCapturing)
}

func TestSessionErrorsUnwrap(t *testing.T) {
	cause := errors.New("disk full")

	assert.ErrorIs(t, &FinalizeError{Err: cause}, cause)
	assert.ErrorIs(t, &SaveError{Filename: "example.com.zip", Err: cause}, cause)
	assert.ErrorIs(t, &InvalidPathError{Path: "%zz", Err: cause}, cause)
	assert.Contains(t, (&SaveError{Filename: "example.com.zip", Err: cause}).Error(), "example.com.zip")
}
