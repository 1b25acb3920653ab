package s3client

// Defaults applied when the corresponding Config fields are unset.
const (
	DefaultSessionName = "s3-file"
	DefaultRetryMode   = "standard"
	DefaultMaxAttempts = 10
)

// Config is the bundle of settings forwarded to the AWS SDK when a session
// is opened. It is immutable after construction and passed through
// unchanged; this package performs no retry or credential logic of its own
// beyond mapping these fields onto SDK options.
type Config struct {
	// Profile names a shared-config credential profile.
	Profile string

	// Static credential triple. Ignored when RoleARN is set.
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	// Region is the target region for the client.
	Region string

	// RoleARN, when set, makes the session assume the role via STS instead
	// of using the static credentials.
	RoleARN string

	// SessionName labels the assumed-role session.
	SessionName string

	// Retry policy forwarded to the SDK.
	RetryMode   string
	MaxAttempts int
}

// withDefaults returns a copy of the config with unset fields defaulted.
func (c Config) withDefaults() Config {
	if c.SessionName == "" {
		c.SessionName = DefaultSessionName
	}
	if c.RetryMode == "" {
		c.RetryMode = DefaultRetryMode
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}
