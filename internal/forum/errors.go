package forum

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map each kind to exactly one HTTP status;
// the services never touch status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrHidden          = errors.New("content is hidden")
	ErrNotOwner        = errors.New("not the author")
	ErrAlreadyLiked    = errors.New("already liked")
	ErrNotLiked        = errors.New("not liked")
	ErrAlreadyReported = errors.New("already reported")
	ErrSelfReport      = errors.New("cannot report yourself")
	ErrAlreadyDeleted  = errors.New("already deleted")
)

// ValidationError carries the caller-facing message for a malformed or
// missing field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
