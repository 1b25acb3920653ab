package s3client

import (
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

type fakeAPIError struct {
	code string
}

func (e *fakeAPIError) Error() string                 { return e.code }
func (e *fakeAPIError) ErrorCode() string             { return e.code }
func (e *fakeAPIError) ErrorMessage() string          { return e.code }
func (e *fakeAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", &fakeAPIError{code: "NoSuchKey"}, ErrNotFound},
		{"not found", &fakeAPIError{code: "NotFound"}, ErrNotFound},
		{"no such bucket", &fakeAPIError{code: "NoSuchBucket"}, ErrBucketNotFound},
		{"access denied", &fakeAPIError{code: "AccessDenied"}, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err, "download failed")
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify(nil, "whatever"))
}

func TestClassifyUnknownCode(t *testing.T) {
	cause := &fakeAPIError{code: "SlowDown"}
	got := classify(cause, "download failed")

	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, ErrNotFound)
	assert.Contains(t, got.Error(), "SlowDown")
}

func TestClassifyPlainError(t *testing.T) {
	cause := errors.New("connection reset")
	got := classify(cause, "download failed")

	assert.ErrorIs(t, got, cause)
	assert.Contains(t, got.Error(), "download failed")
}
