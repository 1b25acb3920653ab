package s3file

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	malformed := &MalformedReferenceError{Input: "s3://x", Reason: "no key"}
	download := &DownloadFailedError{Bucket: "b", Key: "k", Err: errors.New("boom")}
	tmpErr := &TempFileError{Op: "create", Err: errors.New("disk full")}

	assert.True(t, IsMalformedReference(malformed))
	assert.False(t, IsMalformedReference(download))

	assert.True(t, IsDownloadFailed(download))
	assert.False(t, IsDownloadFailed(tmpErr))

	assert.True(t, IsTempFileError(tmpErr))
	assert.False(t, IsTempFileError(malformed))
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	inner := &DownloadFailedError{Bucket: "b", Key: "k", Err: errors.New("boom")}
	wrapped := fmt.Errorf("constructing file: %w", inner)

	assert.True(t, IsDownloadFailed(wrapped))
}

func TestDownloadFailedErrorUnwrap(t *testing.T) {
	cause := errors.New("no credentials")
	err := &DownloadFailedError{Bucket: "b", Key: "k", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "s3://b/k")
}

func TestTempFileErrorMessages(t *testing.T) {
	withPath := &TempFileError{Op: "remove", Path: "/tmp/x.csv", Err: errors.New("busy")}
	assert.Contains(t, withPath.Error(), "/tmp/x.csv")

	withoutPath := &TempFileError{Op: "create", Err: errors.New("full")}
	assert.Contains(t, withoutPath.Error(), "create")
}
