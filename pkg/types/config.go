package types

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=memory sqlite"`
	Seed    bool   `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Field() != "Backend" {
			continue
		}
		if fe.Tag() == "required" {
			return ErrBackendEmpty
		}
		return ErrBackendUnknown
	}
	return err
}
