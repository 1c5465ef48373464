package memfile

import (
	"io"
	"testing"

	"github.com/hupe1980/filekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	t.Run("ReadWriteSeek", func(t *testing.T) {
		f := New(nil)

		n, st := f.Write([]byte("hello world"))
		require.Equal(t, filekit.StatusOK, st)
		require.Equal(t, 11, n)

		pos, st := f.Seek(6, io.SeekStart)
		require.Equal(t, filekit.StatusOK, st)
		require.Equal(t, int64(6), pos)

		buf := make([]byte, 5)
		n, st = f.Read(buf)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, 5, n)
		assert.Equal(t, []byte("world"), buf)

		// EOF.
		n, st = f.Read(buf)
		require.Equal(t, filekit.StatusOK, st)
		assert.Zero(t, n)
	})

	t.Run("SeekWhence", func(t *testing.T) {
		f := New([]byte("0123456789"))

		pos, st := f.Seek(-3, io.SeekEnd)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, int64(7), pos)

		pos, st = f.Seek(-2, io.SeekCurrent)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, int64(5), pos)

		_, st = f.Seek(-1, io.SeekStart)
		require.Equal(t, filekit.StatusFailed, st)
		require.NotNil(t, f.Err())
		assert.Equal(t, filekit.KindInvalidArgument, f.Err().Kind)
	})

	t.Run("WritePastEndZeroFillsGap", func(t *testing.T) {
		f := New([]byte("ab"))

		_, st := f.Seek(5, io.SeekStart)
		require.Equal(t, filekit.StatusOK, st)

		n, st := f.Write([]byte("cd"))
		require.Equal(t, filekit.StatusOK, st)
		require.Equal(t, 2, n)
		assert.Equal(t, []byte{'a', 'b', 0, 0, 0, 'c', 'd'}, f.Bytes())
		assert.Equal(t, int64(7), f.Size())
	})

	t.Run("NewCopiesInput", func(t *testing.T) {
		src := []byte("immutable")
		f := New(src)

		_, st := f.Write([]byte("XXX"))
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, []byte("immutable"), src)
	})

	t.Run("FixedTruncatesWrites", func(t *testing.T) {
		f := NewFixed(make([]byte, 4))

		n, st := f.Write([]byte("abcdef"))
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, 4, n)

		// At capacity a write transfers nothing.
		n, st = f.Write([]byte("gh"))
		require.Equal(t, filekit.StatusOK, st)
		assert.Zero(t, n)
		assert.Equal(t, []byte("abcd"), f.Bytes())
	})
}
