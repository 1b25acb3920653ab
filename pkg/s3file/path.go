package s3file

import (
	"path"
	"path/filepath"
	"strings"
)

// schemeSeparator marks a URI-like remote reference ("s3://...").
const schemeSeparator = ":/"

// RemoteReference is the parsed decomposition of a remote path: the bucket,
// the full object key within it, and the file extension of the last key
// segment. It is derived purely from the input and never mutated.
type RemoteReference struct {
	Bucket    string
	Key       string
	Extension string
}

// Normalize collapses redundant separators in a path. An empty input stays
// empty. Inputs containing a scheme separator keep the scheme prefix
// verbatim while the remainder is slash-cleaned, so "s3://bucket//a//b"
// becomes "s3://bucket/a/b". Plain paths are cleaned per the platform
// convention. No I/O is performed.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	if idx := strings.Index(input, schemeSeparator); idx >= 0 {
		scheme := input[:idx]
		rest := input[idx+len(schemeSeparator):]
		return scheme + schemeSeparator + path.Clean(rest)
	}

	return filepath.Clean(input)
}

// IsRemote reports whether the path names an S3 object reference.
func IsRemote(p string) bool {
	return strings.HasPrefix(p, "s3:")
}

// ParseRemote decomposes a remote reference into its bucket, object key and
// extension. The input must already be normalized and remote. References
// without an identifiable bucket and key are rejected with a
// *MalformedReferenceError.
func ParseRemote(input string) (RemoteReference, error) {
	parts := strings.Split(input, "/")

	// "s3://bucket/key" splits into ["s3:", "", "bucket", "key"].
	if len(parts) < 4 || parts[2] == "" {
		return RemoteReference{}, &MalformedReferenceError{
			Input:  input,
			Reason: "reference must contain a bucket and an object key",
		}
	}

	key := strings.Join(parts[3:], "/")
	if key == "" {
		return RemoteReference{}, &MalformedReferenceError{
			Input:  input,
			Reason: "reference must contain an object key",
		}
	}

	last := parts[len(parts)-1]
	var extension string
	if dot := strings.LastIndex(last, "."); dot >= 0 {
		extension = last[dot+1:]
	}

	return RemoteReference{
		Bucket:    parts[2],
		Key:       key,
		Extension: extension,
	}, nil
}
