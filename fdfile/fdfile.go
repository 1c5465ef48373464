//go:build unix

// Package fdfile provides a filekit.File backed by a Unix file descriptor.
//
// Interrupted and would-block syscalls (EINTR, EAGAIN) surface as
// filekit.StatusRetry, so the filekit bulk helpers reissue them
// transparently. Seeking a pipe or socket (ESPIPE) surfaces as
// filekit.StatusUnsupported, which makes filekit.Search fall back to
// reading and discarding.
package fdfile

import (
	"errors"
	"io"

	"github.com/hupe1980/filekit"
	"golang.org/x/sys/unix"
)

// Syscalls is the syscall table a File dispatches through. Tests substitute
// fakes to exercise retry and failure paths without a real descriptor.
type Syscalls struct {
	Read  func(fd int, p []byte) (int, error)
	Write func(fd int, p []byte) (int, error)
	Seek  func(fd int, offset int64, whence int) (int64, error)
	Close func(fd int) error
}

func defaultSyscalls() Syscalls {
	return Syscalls{
		Read:  unix.Read,
		Write: unix.Write,
		Seek:  unix.Seek,
		Close: unix.Close,
	}
}

// File is a file-descriptor-backed handle.
//
// Not safe for concurrent use.
type File struct {
	fd    int
	owned bool
	sys   Syscalls
	err   *filekit.Error
}

var _ filekit.File = (*File)(nil)

// Option configures a File.
type Option func(*File)

// WithSyscalls replaces the syscall table. Nil entries fall back to the
// real syscalls.
func WithSyscalls(sys Syscalls) Option {
	return func(f *File) {
		if sys.Read != nil {
			f.sys.Read = sys.Read
		}
		if sys.Write != nil {
			f.sys.Write = sys.Write
		}
		if sys.Seek != nil {
			f.sys.Seek = sys.Seek
		}
		if sys.Close != nil {
			f.sys.Close = sys.Close
		}
	}
}

// New wraps an existing descriptor. The descriptor is borrowed: Close is a
// no-op and the caller remains responsible for it.
func New(fd int, optFns ...Option) *File {
	f := &File{fd: fd, sys: defaultSyscalls()}
	for _, fn := range optFns {
		if fn != nil {
			fn(f)
		}
	}
	return f
}

// Open opens path and returns an owned handle; Close releases the
// descriptor.
func Open(path string, flags int, perm uint32, optFns ...Option) (*File, error) {
	f := &File{owned: true, sys: defaultSyscalls()}
	for _, fn := range optFns {
		if fn != nil {
			fn(f)
		}
	}
	fd, err := unix.Open(path, flags, perm)
	if err != nil {
		return nil, err
	}
	f.fd = fd
	return f, nil
}

// Fd returns the underlying descriptor.
func (f *File) Fd() int { return f.fd }

// Close releases the descriptor if the handle owns it.
func (f *File) Close() error {
	if !f.owned {
		return nil
	}
	f.owned = false
	return f.sys.Close(f.fd)
}

// Read reads up to len(p) bytes from the descriptor.
func (f *File) Read(p []byte) (int, filekit.Status) {
	n, err := f.sys.Read(f.fd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, filekit.StatusRetry
		}
		f.SetError(filekit.WrapError(filekit.KindIO, "read failed", err))
		return 0, filekit.StatusFailed
	}
	return n, filekit.StatusOK
}

// Write writes up to len(p) bytes to the descriptor.
func (f *File) Write(p []byte) (int, filekit.Status) {
	n, err := f.sys.Write(f.fd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, filekit.StatusRetry
		}
		f.SetError(filekit.WrapError(filekit.KindIO, "write failed", err))
		return 0, filekit.StatusFailed
	}
	return n, filekit.StatusOK
}

// Seek repositions the descriptor.
func (f *File) Seek(offset int64, whence int) (int64, filekit.Status) {
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		f.SetError(filekit.NewError(filekit.KindInvalidArgument, "invalid whence"))
		return 0, filekit.StatusFailed
	}
	pos, err := f.sys.Seek(f.fd, offset, whence)
	if err != nil {
		if errors.Is(err, unix.ESPIPE) {
			return 0, filekit.StatusUnsupported
		}
		f.SetError(filekit.WrapError(filekit.KindIO, "seek failed", err))
		return 0, filekit.StatusFailed
	}
	return pos, filekit.StatusOK
}

// SetError records err for later retrieval with Err.
func (f *File) SetError(err *filekit.Error) { f.err = err }

// Err returns the most recently recorded error, or nil.
func (f *File) Err() *filekit.Error { return f.err }
