package netctl

import (
	"errors"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

var (
	ErrRunCommand   = errors.New("run command")
	ErrRotationStep = errors.New("rotation step failed")
)

func joinRunErr(sentinel error, stderr string, cause error) error {
	if stderr != "" {
		return errx.With(sentinel, " %q: %w", stderr, cause)
	}
	return errx.Wrap(sentinel, cause)
}
