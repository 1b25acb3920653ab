package s3file

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/rcmdnk/s3-file/pkg/configutils"
	"github.com/rcmdnk/s3-file/pkg/logging"
	"github.com/rcmdnk/s3-file/pkg/s3client"
)

// Config holds the construction parameters for a File. Fields are populated
// from viper, the environment, or explicitly through Options. The
// credential and retry fields are forwarded unchanged to the object-store
// client.
type Config struct {
	Logger     logging.Interface   // optional; defaults to a nop logger
	Downloader s3client.Downloader // optional; overrides session construction (tests)

	Path            string `mapstructure:"path"`
	Profile         string `mapstructure:"profile_name"`
	AccessKeyID     string `mapstructure:"aws_access_key_id"`
	SecretAccessKey string `mapstructure:"aws_secret_access_key"`
	SessionToken    string `mapstructure:"aws_session_token"`
	Region          string `mapstructure:"region_name"`
	RoleARN         string `mapstructure:"role_arn"`
	SessionName     string `mapstructure:"session_name"`
	RetryMode       string `mapstructure:"retry_mode" validate:"omitempty,oneof=standard adaptive"`
	MaxAttempts     int    `mapstructure:"max_attempts" validate:"gte=1"`
}

// Option is a functional configuration override for building a Config.
type Option func(*Config) error

// Apply applies a sequence of options, returning the first error.
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

// NewConfig builds a Config from the given options and fills in defaults.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	if c.Logger == nil {
		c.Logger = logging.NewNopLogger()
	}
	if c.SessionName == "" {
		c.SessionName = s3client.DefaultSessionName
	}
	if c.RetryMode == "" {
		c.RetryMode = s3client.DefaultRetryMode
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = s3client.DefaultMaxAttempts
	}

	return c, nil
}

// Validate performs struct validation on the Config.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ClientConfig maps the credential and retry fields onto the object-store
// client's configuration, passed through unchanged.
func (c *Config) ClientConfig() s3client.Config {
	return s3client.Config{
		Profile:         c.Profile,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
		Region:          c.Region,
		RoleARN:         c.RoleARN,
		SessionName:     c.SessionName,
		RetryMode:       c.RetryMode,
		MaxAttempts:     c.MaxAttempts,
	}
}

// WithViper populates the Config from viper's root keys, binding each field
// to the environment first so env-only configuration works.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		if v == nil {
			return errors.New("nil Viper")
		}
		if err := configutils.BindEnvsRecursive(v, c, ""); err != nil {
			return err
		}
		return v.Unmarshal(c)
	}
}

// WithPath sets the local path or s3:// reference to resolve.
func WithPath(path string) Option {
	return func(c *Config) error {
		c.Path = path
		return nil
	}
}

// WithProfile sets the named credential profile.
func WithProfile(profile string) Option {
	return func(c *Config) error {
		c.Profile = profile
		return nil
	}
}

// WithStaticCredentials sets the static credential triple.
func WithStaticCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(c *Config) error {
		c.AccessKeyID = accessKeyID
		c.SecretAccessKey = secretAccessKey
		c.SessionToken = sessionToken
		return nil
	}
}

// WithRegion sets the target region.
func WithRegion(region string) Option {
	return func(c *Config) error {
		c.Region = region
		return nil
	}
}

// WithAssumeRole sets the role to assume; static credentials are then
// ignored. An empty sessionName keeps the default label.
func WithAssumeRole(roleARN, sessionName string) Option {
	return func(c *Config) error {
		c.RoleARN = roleARN
		if sessionName != "" {
			c.SessionName = sessionName
		}
		return nil
	}
}

// WithRetryPolicy sets the retry mode and attempt limit forwarded to the
// client.
func WithRetryPolicy(mode string, maxAttempts int) Option {
	return func(c *Config) error {
		c.RetryMode = mode
		c.MaxAttempts = maxAttempts
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger logging.Interface) Option {
	return func(c *Config) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		c.Logger = logger
		return nil
	}
}

// WithDownloader injects the object-store client, bypassing session
// construction. Intended for tests.
func WithDownloader(d s3client.Downloader) Option {
	return func(c *Config) error {
		if d == nil {
			return errors.New("nil downloader")
		}
		c.Downloader = d
		return nil
	}
}
