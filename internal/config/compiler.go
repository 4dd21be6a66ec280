package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
)

// Compiler defaults.
const (
	DefaultSolidityVersion = "0.8.6"
	DefaultOptimizerRuns   = 10000
)

// CompilerSettings holds the Solidity compiler version and optimizer settings.
type CompilerSettings struct {
	Version    string    `mapstructure:"version" validate:"required"`
	Optimizer  Optimizer `mapstructure:"optimizer"`
	EVMVersion string    `mapstructure:"evm_version" validate:"omitempty,oneof=homestead tangerineWhistle spuriousDragon byzantium constantinople petersburg istanbul berlin london paris shanghai cancun prague"`
}

// Optimizer trades deployment size against runtime gas cost.
type Optimizer struct {
	Enabled bool `mapstructure:"enabled"`
	Runs    int  `mapstructure:"runs" validate:"gt=0"`
}

var validate = validator.New()

// Validate checks the compiler version is strict semver and the optimizer
// run count is positive.
func (c CompilerSettings) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return NewValidationError("solidity", err.Error())
	}
	if _, err := semver.StrictNewVersion(c.Version); err != nil {
		return NewValidationError("solidity.version", fmt.Sprintf("%q is not a valid compiler version: %v", c.Version, err))
	}
	return nil
}

// fieldError maps a validator failure onto the config key it came from.
func fieldError(fe validator.FieldError) *ValidationError {
	switch fe.StructNamespace() {
	case "CompilerSettings.Version":
		return NewValidationError("solidity.version", "is required")
	case "CompilerSettings.Optimizer.Runs":
		return NewValidationError("solidity.optimizer.runs", fmt.Sprintf("must be positive, got %v", fe.Value()))
	case "CompilerSettings.EVMVersion":
		return NewValidationError("solidity.evm_version", fmt.Sprintf("unknown EVM version %q", fe.Value()))
	default:
		return NewValidationError(fe.Namespace(), fe.Tag())
	}
}
