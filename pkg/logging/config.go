package logging

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigKey is the root configuration key (in Viper) for this module.
var ConfigKey = "logging"

// Config holds the configuration for logging.
type Config struct {
	// Debug forces the debug level and the console encoder.
	// Use "debug=false, level=debug" for JSON-encoded debug logs.
	Debug bool `mapstructure:"debug"`

	// Level controls the logging level. Defaults to INFO if not set.
	Level Level `mapstructure:"level"`

	// If set, timestamps are serialized in RFC3339Nano format instead of
	// the encoder default (ISO8601 for console, epoch for JSON).
	EncodeTimeAsRFC3339Nano bool `mapstructure:"encodeTimeAsRFC3339Nano"`

	// DisableConsoleOutput stops logs from being copied to stdout.
	DisableConsoleOutput bool `mapstructure:"disableConsoleOutput"`

	// Logger carries the lumberjack file-rotation knobs.
	lumberjack.Logger `mapstructure:",squash"`
}

// Option is a configuration option for logging.
type Option func(*Config) error

// Validate ensures the logging Config is valid.
func (c *Config) Validate() error {
	if c.MaxSize < 0 {
		return fmt.Errorf("maxsize must be >= 0, not %d", c.MaxSize)
	}
	if c.MaxBackups < 0 {
		return fmt.Errorf("maxbackups must be >= 0, not %d", c.MaxBackups)
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("maxage days must be >= 0, not %d", c.MaxAge)
	}
	if err := c.Level.Validate(); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}

	return nil
}

// WithViper applies the configuration from the "logging" Viper key.
func WithViper(v *viper.Viper) Option {
	return WithViperKey(v, ConfigKey)
}

// WithViperKey applies the configuration from the given Viper key.
func WithViperKey(v *viper.Viper, configKey string) Option {
	return func(c *Config) error {
		if v == nil {
			return errors.New("nil Viper")
		}

		return v.UnmarshalKey(configKey, c)
	}
}

// Apply takes the supplied options and applies them to the configuration.
func (c *Config) Apply(opts ...Option) error {
	for _, o := range opts {
		if o == nil {
			continue
		}

		if err := o(c); err != nil {
			return err
		}
	}

	return nil
}

// NewConfig creates a new logging config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) toZapCoreLevel() (zapcore.Level, error) {
	if c.Debug {
		return LevelDebug.toZapCoreLevel()
	}

	return c.Level.toZapCoreLevel()
}
