// Package config holds per-invocation settings.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// AppName is the program name used in help and version output.
	AppName = "taskflow"

	// EnvDebug enables debug logging when set to a true value.
	EnvDebug = "TASKFLOW_DEBUG"

	// EnvQuiet suppresses informational output when set to a true value.
	EnvQuiet = "TASKFLOW_QUIET"

	// EnvFormat selects the default output format.
	EnvFormat = "TASKFLOW_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds settings for a single command invocation.
type Config struct {
	// Debug enables debug logging to stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Format is the output format for commands that render tasks.
	// Empty means the command's own default.
	Format string
}

// FromEnv builds a Config from the given environment lookup, usually os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Debug, err = envBool(getenv, EnvDebug); err != nil {
		return nil, err
	}
	if cfg.Quiet, err = envBool(getenv, EnvQuiet); err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		if err := ValidateFormat(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = v
	}
	return cfg, nil
}

// ValidateFormat checks that f names a known output format.
func ValidateFormat(f string) error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s", f)
	}
}

// FormatOr returns the configured format, or def when none is set.
func (c *Config) FormatOr(def string) string {
	if c.Format == "" {
		return def
	}
	return c.Format
}

func envBool(getenv func(string) string, key string) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean: %s", key, v)
	}
	return b, nil
}
