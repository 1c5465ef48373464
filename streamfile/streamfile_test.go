package streamfile

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/hupe1980/filekit"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	t.Run("ReadToEOF", func(t *testing.T) {
		f := NewReader(strings.NewReader("stream data"))

		buf := make([]byte, 64)
		n, st := filekit.ReadFully(f, buf)
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, []byte("stream data"), buf[:n])

		// Sticky EOF.
		n, st = f.Read(buf)
		require.Equal(t, filekit.StatusOK, st)
		assert.Zero(t, n)
	})

	t.Run("SeekUnsupported", func(t *testing.T) {
		f := NewReader(strings.NewReader("x"))

		_, st := f.Seek(0, io.SeekStart)
		assert.Equal(t, filekit.StatusUnsupported, st)
	})

	t.Run("WriteUnsupported", func(t *testing.T) {
		f := NewReader(strings.NewReader("x"))

		_, st := f.Write([]byte("y"))
		assert.Equal(t, filekit.StatusUnsupported, st)
	})

	t.Run("SearchUsesDiscardFallback", func(t *testing.T) {
		f := NewReader(strings.NewReader("zzzzzzzzneedle tail needle"))

		var matches []int64
		st := filekit.Search(f, []byte("needle"), func(_ filekit.File, offset int64) filekit.Status {
			matches = append(matches, offset)
			return filekit.StatusOK
		}, filekit.WithStart(8))
		require.Equal(t, filekit.StatusOK, st)
		assert.Equal(t, []int64{8, 20}, matches)
	})
}

func TestWriter(t *testing.T) {
	var sink bytes.Buffer
	f := NewWriter(&sink)

	n, st := filekit.WriteFully(f, []byte("written through"))
	require.Equal(t, filekit.StatusOK, st)
	assert.Equal(t, 15, n)
	assert.Equal(t, "written through", sink.String())

	_, st = f.Read(make([]byte, 1))
	assert.Equal(t, filekit.StatusUnsupported, st)
}

func TestZstdReader(t *testing.T) {
	payload := append(bytes.Repeat([]byte{'a'}, 5000), []byte("MAGICBYTES")...)
	payload = append(payload, bytes.Repeat([]byte{'b'}, 5000)...)

	var compressed bytes.Buffer
	zw, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	f, err := NewZstdReader(&compressed)
	require.NoError(t, err)

	var matches []int64
	st := filekit.Search(f, []byte("MAGICBYTES"), func(_ filekit.File, offset int64) filekit.Status {
		matches = append(matches, offset)
		return filekit.StatusOK
	})
	require.Equal(t, filekit.StatusOK, st)
	assert.Equal(t, []int64{5000}, matches)
}

func TestLZ4Reader(t *testing.T) {
	payload := append([]byte("prefix "), bytes.Repeat([]byte("pattern "), 3)...)

	var compressed bytes.Buffer
	lw := lz4.NewWriter(&compressed)
	_, err := lw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	f := NewLZ4Reader(&compressed)

	buf := make([]byte, len(payload))
	n, st := filekit.ReadFully(f, buf)
	require.Equal(t, filekit.StatusOK, st)
	assert.Equal(t, payload, buf[:n])
}
