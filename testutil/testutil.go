// Package testutil provides helpers for testing filekit operations,
// chiefly a fault-injecting handle wrapper.
package testutil

import "github.com/hupe1980/filekit"

// FlakyFile wraps a filekit.File and deterministically injects the awkward
// behaviors the bulk helpers must absorb: retry statuses, short transfers,
// mid-stream failures, and handles that cannot seek.
//
// The zero values of all knobs leave the wrapped handle's behavior
// unchanged.
type FlakyFile struct {
	Inner filekit.File

	// RetryEvery makes every Nth read or write call return StatusRetry
	// without transferring anything.
	RetryEvery int

	// MaxChunk caps the number of bytes a single read or write may
	// transfer, forcing short transfers.
	MaxChunk int

	// FailAfter makes reads and writes fail once this many bytes in total
	// have been transferred. Zero disables it.
	FailAfter int64

	// FailWith is the status used when FailAfter trips. Defaults to
	// StatusFailed.
	FailWith filekit.Status

	// SeekUnsupported makes every Seek report StatusUnsupported.
	SeekUnsupported bool

	// Call counters, for asserting that validation happens before I/O.
	ReadCalls  int
	WriteCalls int
	SeekCalls  int

	calls int
	moved int64
}

var _ filekit.File = (*FlakyFile)(nil)

func (f *FlakyFile) failStatus() filekit.Status {
	if f.FailWith == filekit.StatusOK {
		return filekit.StatusFailed
	}
	return f.FailWith
}

func (f *FlakyFile) Read(p []byte) (int, filekit.Status) {
	f.ReadCalls++
	f.calls++
	if f.RetryEvery > 0 && f.calls%f.RetryEvery == 0 {
		return 0, filekit.StatusRetry
	}
	if f.FailAfter > 0 && f.moved >= f.FailAfter {
		f.Inner.SetError(filekit.NewError(filekit.KindIO, "injected failure"))
		return 0, f.failStatus()
	}
	if f.MaxChunk > 0 && len(p) > f.MaxChunk {
		p = p[:f.MaxChunk]
	}
	n, st := f.Inner.Read(p)
	f.moved += int64(n)
	return n, st
}

func (f *FlakyFile) Write(p []byte) (int, filekit.Status) {
	f.WriteCalls++
	f.calls++
	if f.RetryEvery > 0 && f.calls%f.RetryEvery == 0 {
		return 0, filekit.StatusRetry
	}
	if f.FailAfter > 0 && f.moved >= f.FailAfter {
		f.Inner.SetError(filekit.NewError(filekit.KindIO, "injected failure"))
		return 0, f.failStatus()
	}
	if f.MaxChunk > 0 && len(p) > f.MaxChunk {
		p = p[:f.MaxChunk]
	}
	n, st := f.Inner.Write(p)
	f.moved += int64(n)
	return n, st
}

func (f *FlakyFile) Seek(offset int64, whence int) (int64, filekit.Status) {
	f.SeekCalls++
	if f.SeekUnsupported {
		return 0, filekit.StatusUnsupported
	}
	return f.Inner.Seek(offset, whence)
}

func (f *FlakyFile) SetError(err *filekit.Error) { f.Inner.SetError(err) }

func (f *FlakyFile) Err() *filekit.Error { return f.Inner.Err() }
