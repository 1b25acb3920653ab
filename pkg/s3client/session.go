package s3client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/rcmdnk/s3-file/pkg/logging"
)

const (
	httpTimeout  = 10 * time.Minute
	maxIdleConns = 100
)

// Downloader fetches a single object into a local file. It is the only
// surface the rest of the module consumes from this package.
type Downloader interface {
	Download(ctx context.Context, bucket, key, dest string) error
}

// Session implements Downloader over the AWS SDK.
//
// Opening a session has no effect on the process-wide math/rand generators:
// the SDK's retry jitter draws from its own internally seeded source, so
// callers that depend on reproducible randomness are unaffected by session
// construction or downloads.
type Session struct {
	client     *s3.Client
	downloader *manager.Downloader
	logger     logging.Interface
}

// NewSession resolves credentials per cfg and returns a ready session.
// Credential precedence: assume role (RoleARN) overrides the static triple,
// which overrides the named profile, which overrides the SDK default chain.
func NewSession(ctx context.Context, cfg Config, logger logging.Interface) (*Session, error) {
	cfg = cfg.withDefaults()

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	logger.WithField("region", cfg.Region).
		WithField("retry_mode", cfg.RetryMode).
		WithField("max_attempts", cfg.MaxAttempts).
		Debug("S3 session opened")

	return &Session{
		client:     client,
		downloader: manager.NewDownloader(client),
		logger:     logger,
	}, nil
}

func loadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	retryMode, err := aws.ParseRetryMode(cfg.RetryMode)
	if err != nil {
		return aws.Config{}, fmt.Errorf("invalid retry mode %q: %w", cfg.RetryMode, err)
	}

	configOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMode(retryMode),
		awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts),
		awsconfig.WithHTTPClient(&http.Client{
			Timeout: httpTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConns,
				IdleConnTimeout:     90 * time.Second,
			},
		}),
	}

	if cfg.Region != "" {
		configOpts = append(configOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		configOpts = append(configOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.RoleARN == "" && cfg.AccessKeyID != "" {
		configOpts = append(configOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				cfg.SessionToken,
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.RoleARN != "" {
		stsClient := sts.NewFromConfig(awsCfg)
		provider := stscreds.NewAssumeRoleProvider(stsClient, cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = cfg.SessionName
		})
		awsCfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return awsCfg, nil
}

// Download fetches the full object bucket/key into dest, overwriting it.
func (s *Session) Download(ctx context.Context, bucket, key, dest string) error {
	file, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open destination file: %w", err)
	}
	defer file.Close()

	_, err = s.downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classify(err, fmt.Sprintf("failed to download s3://%s/%s", bucket, key))
	}

	s.logger.WithField("bucket", bucket).
		WithField("key", key).
		WithField("dest", dest).
		Debug("object downloaded")

	return nil
}
