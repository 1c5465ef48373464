package filekit

// ReadFully reads from f until p is filled or end of file is reached.
//
// It differs from a single File.Read in that short reads are continued and
// StatusRetry is reissued transparently, so ReadFully itself never returns
// StatusRetry. The returned count is valid even when the status is a
// failure; take it into account when reattempting the read.
func ReadFully(f File, p []byte) (int, Status) {
	var total int

	for total < len(p) {
		n, st := f.Read(p[total:])
		if st == StatusRetry {
			continue
		}
		if st < StatusOK {
			return total, st
		}
		if n == 0 {
			// End of file.
			break
		}
		total += n
	}

	return total, StatusOK
}

// WriteFully writes p to f until every byte is written or the handle stops
// accepting data.
//
// Like ReadFully it absorbs StatusRetry and continues across short writes.
// The returned count is valid even when the status is a failure.
func WriteFully(f File, p []byte) (int, Status) {
	var total int

	for total < len(p) {
		n, st := f.Write(p[total:])
		if st == StatusRetry {
			continue
		}
		if st < StatusOK {
			return total, st
		}
		if n == 0 {
			break
		}
		total += n
	}

	return total, StatusOK
}
