package s3file

import (
	"errors"
	"fmt"
)

// MalformedReferenceError indicates an s3:// reference that cannot be
// decomposed into a bucket and object key.
type MalformedReferenceError struct {
	Input  string
	Reason string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed s3 reference %q: %s", e.Input, e.Reason)
}

// DownloadFailedError wraps any failure from the object-store client during
// session construction or transfer, preserving the underlying cause.
type DownloadFailedError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("download of s3://%s/%s failed: %v", e.Bucket, e.Key, e.Err)
}

func (e *DownloadFailedError) Unwrap() error { return e.Err }

// TempFileError indicates allocation or cleanup of the local temporary file
// failed.
type TempFileError struct {
	Op   string
	Path string
	Err  error
}

func (e *TempFileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("temp file %s failed for %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("temp file %s failed: %v", e.Op, e.Err)
}

func (e *TempFileError) Unwrap() error { return e.Err }

// IsMalformedReference reports whether err is a MalformedReferenceError.
func IsMalformedReference(err error) bool {
	var target *MalformedReferenceError
	return errors.As(err, &target)
}

// IsDownloadFailed reports whether err is a DownloadFailedError.
func IsDownloadFailed(err error) bool {
	var target *DownloadFailedError
	return errors.As(err, &target)
}

// IsTempFileError reports whether err is a TempFileError.
func IsTempFileError(err error) bool {
	var target *TempFileError
	return errors.As(err, &target)
}
