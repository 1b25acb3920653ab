package s3client

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Sentinel errors surfaced from Download. They are preserved through any
// wrapping done by callers, so errors.Is works on the final error chain.
var (
	ErrNotFound       = errors.New("s3client: object not found")
	ErrBucketNotFound = errors.New("s3client: bucket not found")
	ErrAccessDenied   = errors.New("s3client: access denied")
)

// classify maps SDK API errors onto the package sentinels while keeping the
// original error in the chain.
func classify(err error, msg string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
		case "NoSuchBucket":
			return fmt.Errorf("%s: %w: %w", msg, ErrBucketNotFound, err)
		case "AccessDenied":
			return fmt.Errorf("%s: %w: %w", msg, ErrAccessDenied, err)
		default:
			return fmt.Errorf("%s: %s: %w", msg, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
