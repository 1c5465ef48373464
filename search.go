package filekit

import (
	"bytes"
	"io"
	"math"
)

// DefaultBufferSize is the sliding window size Search uses when no explicit
// buffer size is configured and twice the pattern size is smaller.
const DefaultBufferSize = 8 * 1024 * 1024

// SearchFunc is invoked once per match with the handle and the absolute
// offset of the match start.
//
// The handle position must not change across a successful return. If file
// operations are needed, save the position with File.Seek beforehand and
// restore it afterwards; it is unlikely to equal the match offset.
//
// Return StatusOK to continue the search, StatusWarn to stop it early
// while Search still reports StatusOK, or anything worse than StatusOK to
// abort the search with that status.
type SearchFunc func(f File, offset int64) Status

// Search scans f for non-overlapping occurrences of pattern and invokes fn
// for each match, scanning arbitrarily large inputs with a single
// fixed-size buffer.
//
// Matches never overlap: if the contents are "ababababab" and the pattern
// is "abab", the reported offsets are 0 and 4, not 0, 2, 4 and 6. Each
// scan resumes at the end of the previous match.
//
// The handle position after Search returns is unspecified. Seek to a known
// location before further reads or writes.
func Search(f File, pattern []byte, fn SearchFunc, optFns ...SearchOption) Status {
	o := applySearchOptions(optFns)

	// Check boundaries.
	if o.start >= 0 && o.end >= 0 && o.end < o.start {
		f.SetError(NewError(KindInvalidArgument, "end offset < start offset"))
		return StatusFailed
	}

	// Trivial case.
	if o.maxMatches == 0 || len(pattern) == 0 {
		return StatusOK
	}

	bufSize := o.bufferSize
	if bufSize == 0 {
		bufSize = DefaultBufferSize
		if len(pattern) > math.MaxInt/2 {
			bufSize = math.MaxInt
		} else if 2*len(pattern) > bufSize {
			bufSize = 2 * len(pattern)
		}
	}
	if bufSize < len(pattern) {
		f.SetError(NewError(KindInvalidArgument, "buffer size cannot be less than pattern size"))
		return StatusFailed
	}

	var offset int64
	if o.start >= 0 {
		offset = o.start
	}

	// Seek to the starting point. Handles that cannot seek get a forward
	// seek emulated by reading and discarding.
	if _, st := f.Seek(offset, io.SeekStart); st == StatusUnsupported {
		o.logger.Debug("seek unsupported, discarding to start", "start", offset)
		discarded, st := ReadDiscard(f, offset)
		if st < StatusOK {
			return st
		}
		if discarded != offset {
			f.SetError(NewError(KindInvalidArgument, "reached EOF before starting offset"))
			return StatusFatal
		}
	} else if st < StatusOK {
		return st
	}

	w := newWindow(bufSize)
	remaining := o.maxMatches

	for {
		n, st := ReadFully(f, w.vacant())
		if st < StatusOK {
			return st
		}
		w.extend(n)

		if w.len() < len(pattern) {
			// Reached EOF.
			return StatusOK
		}
		if o.end >= 0 && offset >= o.end {
			// Artificial EOF.
			return StatusOK
		}

		// Ensure offset plus anything inside the window cannot overflow.
		if int64(w.len()) > math.MaxInt64-offset {
			f.SetError(NewError(KindInternal, "read overflows offset value"))
			return StatusFailed
		}

		o.logger.Debug("scanning window", "offset", offset, "valid", w.len())

		data := w.valid()
		from := 0
		for from < len(data) {
			i := bytes.Index(data[from:], pattern)
			if i < 0 {
				break
			}
			pos := from + i
			matchOffset := offset + int64(pos)

			// Stop if the match falls outside the ending boundary.
			if o.end >= 0 && matchOffset+int64(len(pattern)) > o.end {
				return StatusOK
			}

			o.logger.Debug("match found", "offset", matchOffset)

			switch st := fn(f, matchOffset); {
			case st == StatusWarn:
				// Callback asked to stop searching early.
				return StatusOK
			case st < StatusOK:
				return st
			}

			if remaining > 0 {
				remaining--
				if remaining == 0 {
					return StatusOK
				}
			}

			// Searches do not overlap: resume past the full match.
			from = pos + len(pattern)
		}

		// Up to len(pattern)-1 trailing bytes may still participate in a
		// match spanning the next fill. Fewer are kept when a match ended
		// close to the end of the window, so bytes already consumed by a
		// reported match are never rescanned.
		keep := len(pattern) - 1
		if tail := len(data) - from; tail < keep {
			keep = tail
		}
		offset += int64(w.retainTail(keep))
	}
}
