package filekit

// scratchSize is the fixed scratch buffer used by ReadDiscard and Move.
const scratchSize = 10240

// ReadDiscard reads and drops size bytes from f, following the same retry
// and short-read rules as ReadFully. A short count with StatusOK means end
// of file was reached first.
//
// Search uses this to emulate a forward seek on handles that report
// StatusUnsupported from Seek.
func ReadDiscard(f File, size int64) (int64, Status) {
	buf := make([]byte, scratchSize)
	var total int64

	for total < size {
		chunk := buf
		if remain := size - total; remain < int64(len(chunk)) {
			chunk = chunk[:remain]
		}

		n, st := f.Read(chunk)
		if st == StatusRetry {
			continue
		}
		if st < StatusOK {
			return total, st
		}
		if n == 0 {
			break
		}
		total += int64(n)
	}

	return total, StatusOK
}
