// Package billyfile adapts go-billy files to the filekit.File contract, so
// the filekit operations run unchanged against any billy filesystem
// (osfs, memfs, chroot'd trees).
package billyfile

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/hupe1980/filekit"
)

// File wraps a billy.File.
//
// Not safe for concurrent use.
type File struct {
	f   billy.File
	err *filekit.Error
}

var _ filekit.File = (*File)(nil)

// New wraps f. The billy file remains owned by the caller, who is
// responsible for closing it.
func New(f billy.File) *File {
	return &File{f: f}
}

// Name returns the name of the underlying billy file.
func (f *File) Name() string { return f.f.Name() }

// Read reads up to len(p) bytes from the file.
func (f *File) Read(p []byte) (int, filekit.Status) {
	n, err := f.f.Read(p)
	if err != nil && err != io.EOF {
		f.SetError(filekit.WrapError(filekit.KindIO, "read failed", err))
		return n, filekit.StatusFailed
	}
	return n, filekit.StatusOK
}

// Write writes up to len(p) bytes to the file.
func (f *File) Write(p []byte) (int, filekit.Status) {
	n, err := f.f.Write(p)
	if err != nil {
		f.SetError(filekit.WrapError(filekit.KindIO, "write failed", err))
		return n, filekit.StatusFailed
	}
	return n, filekit.StatusOK
}

// Seek repositions the file.
func (f *File) Seek(offset int64, whence int) (int64, filekit.Status) {
	pos, err := f.f.Seek(offset, whence)
	if err != nil {
		f.SetError(filekit.WrapError(filekit.KindIO, "seek failed", err))
		return pos, filekit.StatusFailed
	}
	return pos, filekit.StatusOK
}

// SetError records err for later retrieval with Err.
func (f *File) SetError(err *filekit.Error) { f.err = err }

// Err returns the most recently recorded error, or nil.
func (f *File) Err() *filekit.Error { return f.err }
