package filekit

// Status is the result level returned by every File operation and by the
// bulk helpers built on top of them.
//
// Status values are totally ordered by severity. Code in this package only
// compares generically: anything worse than StatusOK is a failure, while
// StatusRetry is always checked by equality and never ordered against
// StatusOK.
type Status int

const (
	// StatusFatal is an unrecoverable failure. The handle position is
	// undefined afterwards.
	StatusFatal Status = iota - 4
	// StatusFailed is a recoverable failure; the operation was aborted.
	StatusFailed
	// StatusWarn is a soft signal. The transfer helpers treat it as a
	// failure; a search callback returns it to stop the search early while
	// Search still reports overall success.
	StatusWarn
	// StatusUnsupported means the handle cannot perform the operation at
	// all (for example seeking on a pipe).
	StatusUnsupported
	// StatusOK is success. A Read returning (0, StatusOK) means end of
	// file.
	StatusOK
	// StatusRetry means no bytes were transferred and the identical call
	// must be reissued. It is not an error.
	StatusRetry
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusFatal:
		return "fatal"
	case StatusFailed:
		return "failed"
	case StatusWarn:
		return "warn"
	case StatusUnsupported:
		return "unsupported"
	case StatusOK:
		return "ok"
	case StatusRetry:
		return "retry"
	default:
		return "unknown"
	}
}
