package filekit

import (
	"io"
	"math"
)

// Move copies size bytes from offset src to offset dest within the same
// handle, with memmove semantics: the two regions may overlap. The copy
// direction is chosen so that source bytes are never overwritten before
// they have been read — forward when dest < src, backward when dest > src.
//
// In the degenerate case where src == dest or size == 0 no I/O is
// performed and Move reports (size, StatusOK).
//
// Move is seek-heavy: it performs two seeks per chunk of up to 10 KiB, so
// it may be slow on handles that cannot seek efficiently.
//
// If the returned count is less than size, the first count bytes were
// copied from src to dest — even for a backward copy — and end of file was
// reached. A short move is reported as StatusOK, not as a failure.
func Move(f File, src, dest, size int64) (int64, Status) {
	// Check if there is anything to do.
	if src == dest || size == 0 {
		return size, StatusOK
	}

	if src > math.MaxInt64-size || dest > math.MaxInt64-size {
		f.SetError(NewError(KindInvalidArgument, "offset + size overflows int64"))
		return 0, StatusFailed
	}

	buf := make([]byte, scratchSize)
	var moved int64

	if dest < src {
		// Copy forwards.
		for moved < size {
			toRead := int64(len(buf))
			if remain := size - moved; remain < toRead {
				toRead = remain
			}

			if _, st := f.Seek(src+moved, io.SeekStart); st != StatusOK {
				return moved, st
			}

			nRead, st := ReadFully(f, buf[:toRead])
			if st != StatusOK {
				return moved, st
			}
			if nRead == 0 {
				break
			}

			if _, st := f.Seek(dest+moved, io.SeekStart); st != StatusOK {
				return moved, st
			}

			nWritten, st := WriteFully(f, buf[:nRead])
			if st != StatusOK {
				return moved, st
			}

			moved += int64(nWritten)

			if nWritten < nRead {
				break
			}
		}
	} else {
		// Copy backwards.
		for moved < size {
			toRead := int64(len(buf))
			if remain := size - moved; remain < toRead {
				toRead = remain
			}

			if _, st := f.Seek(src+size-moved-toRead, io.SeekStart); st != StatusOK {
				return moved, st
			}

			nRead, st := ReadFully(f, buf[:toRead])
			if st != StatusOK {
				return moved, st
			}
			if nRead == 0 {
				break
			}

			if _, st := f.Seek(dest+size-moved-int64(nRead), io.SeekStart); st != StatusOK {
				return moved, st
			}

			nWritten, st := WriteFully(f, buf[:nRead])
			if st != StatusOK {
				return moved, st
			}

			moved += int64(nWritten)

			if nWritten < nRead {
				// Hit EOF. Bytes beyond it can never be copied, so shrink
				// the remaining job by the shortfall.
				size -= int64(nRead - nWritten)
			}
		}
	}

	return moved, StatusOK
}
