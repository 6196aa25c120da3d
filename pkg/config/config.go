// Package config holds the immutable run configuration assembled at
// startup from flags, environment, and interactive prompts, and the
// interfaces ("external collaborators") the CLI wires in around the core.
package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

const (
	DefaultRotationIntervalMins = 15
	DefaultRequestDelayMins     = 2.0
	DefaultSiteSwitchMins       = 30
	DefaultNumUsers             = 3
	// MaxDepth is fixed, never prompted for.
	MaxDepth = 5
)

// Config is frozen once LoadConfig returns and handed to every task by
// shared read-only reference; nothing mutates it after startup.
type Config struct {
	Sites                []string `validate:"min=1,dive,url"`
	Adapter              string   `validate:"required"`
	CIDR                 string   `validate:"required,cidr"`
	DNS                  string   `validate:"required,ip4_addr"`
	Gateway              string   `validate:"required,ip4_addr"`
	RotationIntervalMins int      `validate:"required,min=1"`
	RequestDelayMins     float64  `validate:"required,gt=0"`
	SiteSwitchMins       int      `validate:"required,min=1"`
	NumUsers             int      `validate:"required,min=1"`
	MaxDepth             int      `validate:"required,min=1"`
}

var validate = validator.New()

// Validate checks every field's tag and returns the first aggregate
// validation error, if any.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errx.Wrap(ErrInvalidConfig, err)
	}
	return nil
}
