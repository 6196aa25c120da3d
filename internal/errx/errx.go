// Package errx wraps sentinel errors with call-site context while keeping
// errors.Is/errors.As working through the chain.
package errx

import "fmt"

// Wrap joins a sentinel error with its underlying cause. errors.Is matches
// both sentinel and cause.
func Wrap(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// With joins a sentinel error with a formatted message appended after it.
// format may use %w for a cause among args, which errors.Is then also
// matches; without one, only the sentinel is wrapped.
func With(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w"+format, append([]any{sentinel}, args...)...)
}
