package cli

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/cmdsig/input"
)

// UsageError is a special purpose error used to signal that usage information should be shown to the user.
// It's returned from [Command.Exec] when the user's input can't be bound, and may also be returned from a [CommandFunc] for custom validation.
type UsageError struct {
	wrapped error
	command string
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	if len(e.command) > 0 {
		return "usage error: " + e.command + ": " + e.wrapped.Error()
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// Command returns the path of the command that failed, if known.
func (e *UsageError) Command() string {
	return e.command
}

// BindingError returns the underlying [input.BindingError], if the user's input couldn't be bound.
func (e *UsageError) BindingError() (*input.BindingError, bool) {
	var bindErr *input.BindingError
	if errors.As(e.wrapped, &bindErr) {
		return bindErr, true
	}
	return nil, false
}

// NewUsageError is used to create a [UsageError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}
