package bgg

import (
	"errors"
	"fmt"
)

var (
	// ErrDumpUnavailable means no ranking dump could be downloaded for any of the tried dates.
	ErrDumpUnavailable = errors.New("ranking dump unavailable")

	// ErrMalformedThing means a thing API response could not be read.
	ErrMalformedThing = errors.New("malformed thing response")
)

// RequestError is returned when a thing request still fails after all retries.
type RequestError struct {
	GameID     string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request for game %s failed: %v", e.GameID, e.Err)
	}
	return fmt.Sprintf("request for game %s failed with status %d", e.GameID, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }
