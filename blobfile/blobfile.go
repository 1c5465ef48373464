// Package blobfile adapts ranged-read blobs (object store objects, mmap'd
// segments, anything with ReadAt and a known size) to the filekit.File
// contract. Backends for S3 and MinIO live in the s3 and minio
// subpackages.
package blobfile

import (
	"io"
	"os"

	"github.com/hupe1980/filekit"
)

// ErrNotFound is returned when a blob does not exist.
//
// Backends should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Blob is a read-only ranged-read source with a known size.
type Blob interface {
	io.ReaderAt
	// Size returns the size of the blob in bytes.
	Size() int64
}

// File is a read-only, seekable handle over a Blob.
//
// Not safe for concurrent use.
type File struct {
	blob Blob
	pos  int64
	err  *filekit.Error
}

var _ filekit.File = (*File)(nil)

// New creates a handle positioned at offset 0.
func New(blob Blob) *File {
	return &File{blob: blob}
}

// Read reads up to len(p) bytes from the current position.
func (f *File) Read(p []byte) (int, filekit.Status) {
	if f.pos >= f.blob.Size() {
		return 0, filekit.StatusOK
	}
	n, err := f.blob.ReadAt(p, f.pos)
	f.pos += int64(n)
	if err != nil && err != io.EOF {
		f.SetError(filekit.WrapError(filekit.KindIO, "read failed", err))
		return n, filekit.StatusFailed
	}
	return n, filekit.StatusOK
}

// Write always reports StatusUnsupported; blobs are immutable.
func (f *File) Write(p []byte) (int, filekit.Status) {
	return 0, filekit.StatusUnsupported
}

// Seek repositions the handle within the blob.
func (f *File) Seek(offset int64, whence int) (int64, filekit.Status) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.pos + offset
	case io.SeekEnd:
		pos = f.blob.Size() + offset
	default:
		f.SetError(filekit.NewError(filekit.KindInvalidArgument, "invalid whence"))
		return f.pos, filekit.StatusFailed
	}
	if pos < 0 {
		f.SetError(filekit.NewError(filekit.KindInvalidArgument, "negative position"))
		return f.pos, filekit.StatusFailed
	}
	f.pos = pos
	return pos, filekit.StatusOK
}

// SetError records err for later retrieval with Err.
func (f *File) SetError(err *filekit.Error) { f.err = err }

// Err returns the most recently recorded error, or nil.
func (f *File) Err() *filekit.Error { return f.err }
