package s3file

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmdnk/s3-file/pkg/s3client"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, s3client.DefaultSessionName, c.SessionName)
	assert.Equal(t, s3client.DefaultRetryMode, c.RetryMode)
	assert.Equal(t, s3client.DefaultMaxAttempts, c.MaxAttempts)
	assert.NotNil(t, c.Logger)
	require.NoError(t, c.Validate())
}

func TestNewConfigFromOptions(t *testing.T) {
	c, err := NewConfig(
		WithPath("s3://bucket/key.csv"),
		WithProfile("analytics"),
		WithStaticCredentials("id", "secret", "token"),
		WithRegion("ap-northeast-1"),
		WithAssumeRole("arn:aws:iam::123456789012:role/reader", "nightly"),
		WithRetryPolicy("adaptive", 5),
	)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "s3://bucket/key.csv", c.Path)
	assert.Equal(t, "analytics", c.Profile)
	assert.Equal(t, "id", c.AccessKeyID)
	assert.Equal(t, "secret", c.SecretAccessKey)
	assert.Equal(t, "token", c.SessionToken)
	assert.Equal(t, "ap-northeast-1", c.Region)
	assert.Equal(t, "arn:aws:iam::123456789012:role/reader", c.RoleARN)
	assert.Equal(t, "nightly", c.SessionName)
	assert.Equal(t, "adaptive", c.RetryMode)
	assert.Equal(t, 5, c.MaxAttempts)
}

func TestNewConfigFromViper(t *testing.T) {
	v := viper.New()
	v.Set("path", "s3://bucket/data.json")
	v.Set("profile_name", "prod")
	v.Set("region_name", "eu-west-1")
	v.Set("retry_mode", "standard")
	v.Set("max_attempts", 4)

	c, err := NewConfig(WithViper(v))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "s3://bucket/data.json", c.Path)
	assert.Equal(t, "prod", c.Profile)
	assert.Equal(t, "eu-west-1", c.Region)
	assert.Equal(t, "standard", c.RetryMode)
	assert.Equal(t, 4, c.MaxAttempts)
}

func TestConfigValidateRejectsBadRetryMode(t *testing.T) {
	c, err := NewConfig(WithRetryPolicy("aggressive", 2))
	require.NoError(t, err)
	assert.Error(t, c.Validate())
}

func TestConfigValidateRejectsNonPositiveAttempts(t *testing.T) {
	c, err := NewConfig(WithRetryPolicy("standard", -1))
	require.NoError(t, err)
	assert.Error(t, c.Validate())
}

func TestClientConfigForwardsUnchanged(t *testing.T) {
	c, err := NewConfig(
		WithProfile("p"),
		WithStaticCredentials("id", "secret", "token"),
		WithRegion("us-east-2"),
		WithAssumeRole("arn:aws:iam::1:role/r", "s"),
		WithRetryPolicy("adaptive", 7),
	)
	require.NoError(t, err)

	got := c.ClientConfig()
	want := s3client.Config{
		Profile:         "p",
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
		SessionToken:    "token",
		Region:          "us-east-2",
		RoleARN:         "arn:aws:iam::1:role/r",
		SessionName:     "s",
		RetryMode:       "adaptive",
		MaxAttempts:     7,
	}
	assert.Equal(t, want, got)
}

func TestOptionErrors(t *testing.T) {
	_, err := NewConfig(WithLogger(nil))
	assert.Error(t, err)

	_, err = NewConfig(WithDownloader(nil))
	assert.Error(t, err)

	_, err = NewConfig(WithViper(nil))
	assert.Error(t, err)
}
