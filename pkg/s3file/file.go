package s3file

import (
	"context"
	"os"

	"github.com/rcmdnk/s3-file/pkg/logging"
	"github.com/rcmdnk/s3-file/pkg/s3client"
)

// File presents a local path or an s3:// object reference uniformly as a
// path to a file on local disk. Remote objects are materialized into a
// private temporary file whose lifetime is bound to the File: Close removes
// it. Local paths are only normalized; no temporary file is ever created
// for them.
//
// A File is not safe for concurrent use. Each instance owns at most one
// temporary file.
type File struct {
	original string
	resolved string
	remote   bool
	ref      RemoteReference

	tmp        *tempHandle
	downloader s3client.Downloader
	cfg        *Config
	logger     logging.Interface
}

// tempHandle is the ownership token for the materialized local copy.
type tempHandle struct {
	path string
	open bool
}

// Resolve performs the pure half of construction: it normalizes the input
// path, classifies it as local or remote, and for remote inputs validates
// that the reference decomposes into a bucket and key. No I/O happens here;
// a remote File is not usable until Materialize has run.
func Resolve(opts ...Option) (*File, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	normalized := Normalize(cfg.Path)

	f := &File{
		original:   cfg.Path,
		resolved:   normalized,
		remote:     IsRemote(normalized),
		downloader: cfg.Downloader,
		cfg:        cfg,
		logger:     cfg.Logger,
	}

	if f.remote {
		ref, err := ParseRemote(normalized)
		if err != nil {
			return nil, err
		}
		f.ref = ref
	}

	return f, nil
}

// Materialize downloads the remote object into a freshly created temporary
// file and records it as the resolved path. It is a no-op for local files
// and for files already materialized. The temporary file's suffix matches
// the reference's extension so consumers branching on extension behave
// correctly.
func (f *File) Materialize(ctx context.Context) error {
	if !f.remote || f.tmp != nil {
		return nil
	}

	var suffix string
	if f.ref.Extension != "" {
		suffix = "." + f.ref.Extension
	}

	tmp, err := os.CreateTemp("", "s3file-*"+suffix)
	if err != nil {
		return &TempFileError{Op: "create", Err: err}
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &TempFileError{Op: "create", Path: tmpPath, Err: err}
	}

	downloader := f.downloader
	if downloader == nil {
		session, err := s3client.NewSession(ctx, f.cfg.ClientConfig(), f.logger)
		if err != nil {
			_ = os.Remove(tmpPath)
			return &DownloadFailedError{Bucket: f.ref.Bucket, Key: f.ref.Key, Err: err}
		}
		downloader = session
	}

	if err := downloader.Download(ctx, f.ref.Bucket, f.ref.Key, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return &DownloadFailedError{Bucket: f.ref.Bucket, Key: f.ref.Key, Err: err}
	}

	f.tmp = &tempHandle{path: tmpPath, open: true}
	f.resolved = tmpPath

	f.logger.WithField("bucket", f.ref.Bucket).
		WithField("key", f.ref.Key).
		WithField("path", tmpPath).
		Debug("remote object materialized")

	return nil
}

// New resolves and, when the input is remote, eagerly materializes the
// file. All failures surface here; there is no deferred failure mode. The
// caller owns the returned File and must Close it to release the temporary
// file.
func New(ctx context.Context, opts ...Option) (*File, error) {
	f, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err := f.Materialize(ctx); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the current local path: the normalized input for local
// files, the temporary file for materialized remote ones.
func (f *File) Path() string { return f.resolved }

// OriginalPath returns the path as supplied by the caller.
func (f *File) OriginalPath() string { return f.original }

// Remote reports whether the input was an s3:// reference.
func (f *File) Remote() bool { return f.remote }

// Reference returns the parsed remote reference. The zero value is returned
// for local files.
func (f *File) Reference() RemoteReference { return f.ref }

// Detach relinquishes ownership of the materialized temporary file: Close
// becomes a no-op and the file survives the File instance. The caller takes
// over removal. It has no effect for local inputs and returns the current
// resolved path either way.
func (f *File) Detach() string {
	if f.tmp != nil {
		f.tmp.open = false
	}
	return f.resolved
}

// Close releases the temporary file, if any. It is idempotent; calling it
// on a local or already-closed File is a no-op. A failed removal is logged
// and returned, but the handle is marked closed either way so teardown
// never runs twice.
func (f *File) Close() error {
	if f.tmp == nil || !f.tmp.open {
		return nil
	}
	f.tmp.open = false

	if err := os.Remove(f.tmp.path); err != nil && !os.IsNotExist(err) {
		f.logger.WithError(err).
			WithField("path", f.tmp.path).
			Warn("failed to remove temporary file")
		return &TempFileError{Op: "remove", Path: f.tmp.path, Err: err}
	}

	return nil
}
