package filekit

// File is the capability every operation in this package consumes: a
// minimal handle exposing single-shot read, write, seek, and error
// reporting. Concrete backings live in the subpackages (memfile, fdfile,
// streamfile, blobfile, billyfile); this package never needs to know
// which one it is given.
//
// A single Read or Write may transfer fewer bytes than requested without
// that being an error. A StatusRetry result means no bytes were
// transferred and the identical call should be reissued unchanged.
//
// A File is exclusively owned by the caller for the duration of each
// operation. It is not safe to use one handle from two call sites at once.
type File interface {
	// Read reads up to len(p) bytes into p and returns the number of bytes
	// transferred. (0, StatusOK) means end of file. StatusUnsupported
	// means the handle cannot read at all.
	Read(p []byte) (int, Status)

	// Write writes up to len(p) bytes from p and returns the number of
	// bytes transferred. StatusUnsupported means the handle cannot write.
	Write(p []byte) (int, Status)

	// Seek repositions the handle. whence is one of io.SeekStart,
	// io.SeekCurrent, io.SeekEnd. It returns the new absolute position on
	// success and StatusUnsupported if the handle cannot seek, which makes
	// Search fall back to reading and discarding.
	Seek(offset int64, whence int) (int64, Status)

	// SetError records a structured diagnostic for the caller to retrieve
	// after a failing call.
	SetError(err *Error)

	// Err returns the diagnostic recorded by the most recent failing call,
	// or nil.
	Err() *Error
}
