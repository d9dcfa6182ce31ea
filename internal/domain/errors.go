package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	BindingUnavailable ErrorKind = iota + 1
	UpstreamCallFailed
	ResponseParseFailed
)

func (k ErrorKind) String() string {
	switch k {
	case BindingUnavailable:
		return "binding unavailable"
	case UpstreamCallFailed:
		return "upstream call failed"
	case ResponseParseFailed:
		return "response parse failed"
	default:
		return "unknown"
	}
}

// Error is returned by every LeadService operation that fails.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrNoLLM   = errors.New("language model client is not configured")
	ErrNoSheet = errors.New("spreadsheet is not connected")
)

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the ErrorKind carried by err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
