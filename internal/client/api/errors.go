package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrValidation     = errors.New("invalid data")
	ErrServer         = errors.New("server error")
	ErrSessionExpired = errors.New("session expired")
)

// Error is returned for any non-2xx backend response. It wraps one of the
// sentinel errors above and keeps the backend message and request id for
// diagnostics.
type Error struct {
	Status    int
	Message   string
	RequestID string
	Err       error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s (status %d, request %s)", msg, e.Status, e.RequestID)
}

func (e *Error) Unwrap() error { return e.Err }
