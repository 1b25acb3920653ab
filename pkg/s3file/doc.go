// Package s3file presents a local path or an s3:// object reference
// uniformly as a path to a file on local disk. Remote objects are
// materialized into a temporary file owned by the File instance and removed
// when it is closed; local paths are only normalized and never copied.
package s3file
