package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying rejected simulation requests.
// Use errors.Is to check: errors.Is(err, sim.ErrOutOfRange)
var (
	ErrMissingField     = errors.New("sim: missing required field")
	ErrMalformedInput   = errors.New("sim: malformed input")
	ErrOutOfRange       = errors.New("sim: value out of range")
	ErrUnknownAlgorithm = errors.New("sim: unknown algorithm")
	ErrInternal         = errors.New("sim: internal error")
)

// RequestError pairs a user-facing message with the sentinel that classifies
// it, so transports can map the class to a status code while returning the
// message verbatim.
type RequestError struct {
	kind error
	msg  string
}

func (e *RequestError) Error() string { return e.msg }

// Unwrap exposes the classifying sentinel to errors.Is.
func (e *RequestError) Unwrap() error { return e.kind }

func reject(kind error, format string, args ...any) *RequestError {
	return &RequestError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
