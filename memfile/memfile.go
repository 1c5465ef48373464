// Package memfile provides a growable in-memory filekit.File, primarily
// useful for tests and for patching byte buffers with the filekit
// operations.
package memfile

import (
	"io"

	"github.com/hupe1980/filekit"
)

// File is an in-memory handle. It is readable, writable and seekable;
// writes past the current end grow the buffer, zero-filling any gap.
//
// Not safe for concurrent use.
type File struct {
	data  []byte
	pos   int64
	fixed bool
	err   *filekit.Error
}

var _ filekit.File = (*File)(nil)

// New creates a handle positioned at offset 0. data is copied, so the
// caller's slice is never mutated.
func New(data []byte) *File {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &File{data: buf}
}

// NewFixed creates a handle over a fixed-capacity buffer. Writes are
// truncated at the end of the buffer instead of growing it; a write at the
// very end transfers zero bytes, which the bulk helpers report as end of
// capacity. data is copied.
func NewFixed(data []byte) *File {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &File{data: buf, fixed: true}
}

// Bytes returns the current contents. The slice is valid until the next
// write.
func (f *File) Bytes() []byte { return f.data }

// Size returns the current content length.
func (f *File) Size() int64 { return int64(len(f.data)) }

// Read copies bytes from the current position into p.
func (f *File) Read(p []byte) (int, filekit.Status) {
	if f.pos >= int64(len(f.data)) {
		return 0, filekit.StatusOK
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, filekit.StatusOK
}

// Write copies p to the current position. Growable handles extend the
// buffer as needed; fixed handles truncate at capacity.
func (f *File) Write(p []byte) (int, filekit.Status) {
	if f.fixed {
		if f.pos >= int64(len(f.data)) {
			return 0, filekit.StatusOK
		}
		n := copy(f.data[f.pos:], p)
		f.pos += int64(n)
		return n, filekit.StatusOK
	}
	if end := f.pos + int64(len(p)); end > int64(len(f.data)) {
		grown := make([]byte, end)
		copy(grown, f.data)
		f.data = grown
	}
	n := copy(f.data[f.pos:], p)
	f.pos += int64(n)
	return n, filekit.StatusOK
}

// Seek repositions the handle. Seeking past the end is allowed; a
// subsequent read reports end of file and a subsequent write grows the
// buffer.
func (f *File) Seek(offset int64, whence int) (int64, filekit.Status) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.pos + offset
	case io.SeekEnd:
		pos = int64(len(f.data)) + offset
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
