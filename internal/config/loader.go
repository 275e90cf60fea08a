// Package config provides configuration loading and management for nullfill.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	nferrors "github.com/dbmrq/nullfill/internal/errors"
	"github.com/dbmrq/nullfill/internal/fill"
)

const (
	// AppDir is the directory name under the user config and cache directories.
	AppDir = "nullfill"

	// ConfigFileName is the name of the config file inside AppDir.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "NULLFILL"
)

// DefaultPath returns the default config file location,
// e.g. ~/.config/nullfill/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, ConfigFileName), nil
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, DefaultPath is used and a missing file is not an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return l.finish(NewConfig(), "")
		}
		path = p
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if explicit {
			return nil, nferrors.ConfigNotFound(path)
		}
		return l.finish(NewConfig(), path)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, nferrors.ConfigParseError(path, err)
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, nferrors.ConfigParseError(path, err)
	}

	return l.finish(cfg, path)
}

// finish applies env overrides and defaults, then validates.
func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, validationFailure(path, err)
	}
	return cfg, nil
}

// validationFailure converts ValidationErrors into a user-facing error that
// names the first offending field.
func validationFailure(path string, err error) error {
	var errs ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return nferrors.Wrap(err, nferrors.ErrConfig, "configuration validation failed")
	}
	first := errs[0]
	nfErr := nferrors.ConfigValidationError(first.Field, "validation failed", first.Options)
	nfErr.Cause = errs
	if path != "" {
		nfErr.WithDetails("path", path)
	}
	return nfErr
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// Fill settings
	if v := os.Getenv(EnvPrefix + "_FILL_MODE"); v != "" {
		cfg.Fill.Mode = fill.ValueKind(v)
	}
	if v := os.Getenv(EnvPrefix + "_FILL_FALLBACK"); v != "" {
		cfg.Fill.Fallback = v
	}
	if v := os.Getenv(EnvPrefix + "_FILL_ON_MALFORMED"); v != "" {
		cfg.Fill.OnMalformed = fill.MalformedPolicy(v)
	}

	// Clipboard settings
	if v := os.Getenv(EnvPrefix + "_CLIPBOARD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Clipboard.Timeout = d
		}
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(fill.ValueKind("")):
			return fill.ValueKind(strings.ToLower(data.(string))), nil
		case reflect.TypeOf(fill.MalformedPolicy("")):
			return fill.MalformedPolicy(strings.ToLower(data.(string))), nil
		}

		return data, nil
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Write saves cfg as YAML to path, creating parent directories.
// An existing file is only replaced when force is set.
func Write(cfg *Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nferrors.WithSuggestion(nferrors.ErrConfig,
				fmt.Sprintf("configuration file already exists: %s", path),
				"Use --force to overwrite it").WithDetails("path", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, DefaultPath is used.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
