package view

import (
	"errors"
	"strings"
)

// ErrStale is returned by a fetch whose result was discarded because a
// newer fetch of the same resource started after it.
var ErrStale = errors.New("superseded by a newer request")

// AppError is a failure the backend reported inside a successful response
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// newAppError builds an AppError, using fallback when the backend sent no text
func newAppError(message, fallback string) *AppError {
	if strings.TrimSpace(message) == "" {
		message = fallback
	}
	return &AppError{Message: message}
}

// IsStale reports whether err only means the result was superseded
func IsStale(err error) bool {
	return errors.Is(err, ErrStale)
}
