// Package streamfile adapts plain io.Reader and io.Writer streams to the
// filekit.File contract.
//
// Stream handles never support seeking, which makes them the natural
// exercise for filekit.Search's discard fallback: a search with a starting
// offset simply reads and drops the bytes before it. Constructors for zstd
// and lz4 readers allow searching inside compressed data without inflating
// it to disk first.
package streamfile

import (
	"io"

	"github.com/hupe1980/filekit"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// File is a stream-backed handle. Depending on the constructor it is
// readable, writable, or both; it is never seekable.
//
// Not safe for concurrent use.
type File struct {
	r   io.Reader
	w   io.Writer
	eof bool
	err *filekit.Error
}

var _ filekit.File = (*File)(nil)

// NewReader creates a read-only handle over r.
func NewReader(r io.Reader) *File {
	return &File{r: r}
}

// NewWriter creates a write-only handle over w.
func NewWriter(w io.Writer) *File {
	return &File{w: w}
}

// NewReadWriter creates a handle reading from r and writing to w.
func NewReadWriter(r io.Reader, w io.Writer) *File {
	return &File{r: r, w: w}
}

// NewZstdReader creates a read-only handle over the decompressed contents
// of the zstd stream r.
func NewZstdReader(r io.Reader) (*File, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &File{r: zr}, nil
}

// NewLZ4Reader creates a read-only handle over the decompressed contents
// of the lz4 frame stream r.
func NewLZ4Reader(r io.Reader) *File {
	return &File{r: lz4.NewReader(r)}
}

// Read reads up to len(p) bytes from the stream.
func (f *File) Read(p []byte) (int, filekit.Status) {
	if f.r == nil {
		return 0, filekit.StatusUnsupported
	}
	if f.eof {
		return 0, filekit.StatusOK
	}
	n, err := f.r.Read(p)
	switch {
	case err == nil:
		if n == 0 && len(p) > 0 {
			// A reader returning (0, nil) made no progress; reissue.
			return 0, filekit.StatusRetry
		}
		return n, filekit.StatusOK
	case err == io.EOF:
		f.eof = true
		return n, filekit.StatusOK
	default:
		f.SetError(filekit.WrapError(filekit.KindIO, "read failed", err))
		return n, filekit.StatusFailed
	}
}

// Write writes up to len(p) bytes to the stream.
func (f *File) Write(p []byte) (int, filekit.Status) {
	if f.w == nil {
		return 0, filekit.StatusUnsupported
	}
	n, err := f.w.Write(p)
	if err != nil {
		f.SetError(filekit.WrapError(filekit.KindIO, "write failed", err))
		return n, filekit.StatusFailed
	}
	return n, filekit.StatusOK
}

// Seek always reports StatusUnsupported; streams have no position to move.
func (f *File) Seek(offset int64, whence int) (int64, filekit.Status) {
	return 0, filekit.StatusUnsupported
}

// SetError records err for later retrieval with Err.
func (f *File) SetError(err *filekit.Error) { f.err = err }

// Err returns the most recently recorded error, or nil.
func (f *File) Err() *filekit.Error { return f.err }
