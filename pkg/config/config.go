// Package config loads and validates the small set of knobs the engine
// exposes at process startup: initial store capacity, whether metrics are
// enabled, and log level.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// EngineConfig is the top-level configuration struct, loadable from YAML
// and validated with struct tags the way pkg/validation/validator.go
// validates NodeRequest/EdgeRequest.
type EngineConfig struct {
	InitialVertexCapacity int    `yaml:"initial_vertex_capacity" validate:"min=1"`
	InitialEdgeCapacity   int    `yaml:"initial_edge_capacity" validate:"min=1"`
	MetricsEnabled        bool   `yaml:"metrics_enabled"`
	LogLevel              string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultEngineConfig returns the configuration the engine runs with when
// no file is supplied.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		InitialVertexCapacity: 256,
		InitialEdgeCapacity:   256,
		MetricsEnabled:        false,
		LogLevel:              "info",
	}
}

// Load reads and validates an EngineConfig from a YAML file at path.
func Load(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// Validate checks every struct tag constraint, returning the first
// failure formatted the way formatValidationError renders validator
// errors for request structs.
func (c EngineConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()
		switch tag {
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}
	return err
}
