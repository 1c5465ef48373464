package filekit

type searchOptions struct {
	start      int64
	end        int64
	bufferSize int
	maxMatches int64
	logger     *Logger
}

// SearchOption configures a single Search call.
type SearchOption func(*searchOptions)

// WithStart sets the absolute offset at which the search begins. A
// negative offset (the default) means the beginning of the file.
//
// If the handle cannot seek, the bytes before the starting offset are read
// and discarded instead; in that case the handle must be positioned at the
// beginning of the file before calling Search.
func WithStart(offset int64) SearchOption {
	return func(o *searchOptions) {
		o.start = offset
	}
}

// WithEnd sets the absolute offset at which the search ends. A negative
// offset (the default) means the end of the file. No match is reported
// whose end would exceed this boundary.
func WithEnd(offset int64) SearchOption {
	return func(o *searchOptions) {
		o.end = offset
	}
}

// WithBufferSize sets the size of the sliding window buffer. It must be at
// least the pattern size or Search fails with an invalid-argument error
// before any I/O. Zero (the default) chooses automatically: the larger of
// 8 MiB and twice the pattern size.
func WithBufferSize(size int) SearchOption {
	return func(o *searchOptions) {
		o.bufferSize = size
	}
}

// WithMaxMatches bounds the number of matches reported. A negative value
// (the default) reports all matches; zero makes Search succeed trivially
// without reading anything.
func WithMaxMatches(n int64) SearchOption {
	return func(o *searchOptions) {
		o.maxMatches = n
	}
}

// WithLogger configures structured debug logging for the search. Pass nil
// to disable logging.
func WithLogger(logger *Logger) SearchOption {
	return func(o *searchOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applySearchOptions(optFns []SearchOption) searchOptions {
	o := searchOptions{
		start:      -1,
		end:        -1,
		maxMatches: -1,
		logger:     NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
