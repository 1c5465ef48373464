//go:build unix

package fdfile

import (
	"io"
	"testing"

	"github.com/hupe1980/filekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fakeFD simulates a descriptor over a byte slice, optionally failing the
// first reads with EINTR the way an interrupted syscall would.
type fakeFD struct {
	data    []byte
	pos     int64
	eintrs  int
	noSeek  bool
	readErr error
}

func (f *fakeFD) syscalls() Syscalls {
	return Syscalls{
		Read: func(_ int, p []byte) (int, error) {
			if f.eintrs > 0 {
				f.eintrs--
				return 0, unix.EINTR
			}
			if f.readErr != nil {
				return 0, f.readErr
			}
			if f.pos >= int64(len(f.data)) {
				return 0, nil
			}
			n := copy(p, f.data[f.pos:])
			f.pos += int64(n)
			return n, nil
		},
		Write: func(_ int, p []byte) (int, error) {
			if f.eintrs > 0 {
				f.eintrs--
				return 0, unix.EINTR
			}
			f.data = append(f.data[:f.pos], p...)
			f.pos += int64(len(p))
			return len(p), nil
		},
		Seek: func(_ int, offset int64, whence int) (int64, error) {
			if f.noSeek {
				return 0, unix.ESPIPE
			}
			switch whence {
			case io.SeekStart:
				f.pos = offset
			case io.SeekCurrent:
				f.pos += offset
			case io.SeekEnd:
				f.pos = int64(len(f.data)) + offset
			}
			return f.pos, nil
		},
		Close: func(int) error { return nil },
	}
}

func TestFile(t *testing.T) {
	t.Run("EINTRBecomesRetry", func(t *testing.T) {
		fd := &fakeFD{data: []byte("interrupted"), eintrs: 2}
		f := New(3, WithSyscalls(fd.syscalls()))

		n, st := f.Read(make([]byte, 4))
		assert.Equal(t, filekit.StatusRetry, st)
		assert.Zero(t, n)

		// ReadFully absorbs the injected interrupts.
		buf := make([]byte, 11)
		rn, st := filekit.ReadFully(f, buf)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, []byte("interrupted"), buf[:rn])
	})

	t.Run("ESPIPEBecomesUnsupported", func(t *testing.T) {
		fd := &fakeFD{data: []byte("pipe"), noSeek: true}
		f := New(3, WithSyscalls(fd.syscalls()))

		_, st := f.Seek(0, io.SeekStart)
		assert.Equal(t, filekit.StatusUnsupported, st)
	})

	t.Run("HardFailureRecordsError", func(t *testing.T) {
		fd := &fakeFD{readErr: unix.EBADF}
		f := New(3, WithSyscalls(fd.syscalls()))

		_, st := f.Read(make([]byte, 4))
		require.Equal(t, filekit.StatusFailed, st)
		require.NotNil(t, f.Err())
		assert.Equal(t, filekit.KindIO, f.Err().Kind)
		assert.ErrorIs(t, f.Err(), unix.EBADF)
	})

	t.Run("SeekWhence", func(t *testing.T) {
		fd := &fakeFD{data: []byte("0123456789")}
		f := New(3, WithSyscalls(fd.syscalls()))

		pos, st := f.Seek(-4, io.SeekEnd)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, int64(6), pos)

		buf := make([]byte, 4)
		n, st := filekit.ReadFully(f, buf)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, []byte("6789"), buf[:n])
	})

	t.Run("SearchOverFD", func(t *testing.T) {
		fd := &fakeFD{data: []byte("xx<tag>yy<tag>zz"), eintrs: 1}
		f := New(3, WithSyscalls(fd.syscalls()))

		var matches []int64
		st := filekit.Search(f, []byte("<tag>"), func(_ filekit.File, offset int64) filekit.Status {
			matches = append(matches, offset)
			return filekit.StatusOK
		})
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, []int64{2, 9}, matches)
	})
}
