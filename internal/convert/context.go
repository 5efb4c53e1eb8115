package convert

import (
	"errors"

	"bridge-generator/internal/api"
)

// contextError couples a rule failure with optional user-facing
// attribution. Rules attach attribution via WithContext; a plain error
// means there is nothing actionable to show.
type contextError struct {
	err error
	ctx *api.ErrorContext
}

func (e *contextError) Error() string {
	return e.err.Error()
}

func (e *contextError) Unwrap() error {
	return e.err
}

// WithContext attributes err to ctx. A nil ctx is allowed and states
// explicitly that the failure has no user-actionable attribution.
func WithContext(err error, ctx *api.ErrorContext) error {
	if err == nil {
		return nil
	}

	return &contextError{err: err, ctx: ctx}
}

// splitContext separates a rule error into its cause and attribution.
// The outermost attribution wins when an error was wrapped twice.
func splitContext(err error) (error, *api.ErrorContext) {
	var ce *contextError
	if errors.As(err, &ce) {
		return ce.err, ce.ctx
	}

	return err, nil
}

// errorCode extracts the category string of a categorized conversion
// error, or "" for errors outside the taxonomy.
func errorCode(err error) string {
	var ce api.ConvertError
	if errors.As(err, &ce) {
		return ce.Code.String()
	}

	return ""
}
