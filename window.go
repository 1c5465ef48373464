package filekit

// window is the bounded buffer Search slides across the file. It tracks
// how many of its bytes are valid so the scan loop can reason about
// "fill the vacant tail", "search the valid contents", and "retain the
// trailing bytes that could span into the next fill" without any pointer
// bookkeeping.
type window struct {
	buf []byte
	n   int // valid bytes at the front of buf
}

func newWindow(size int) *window {
	return &window{buf: make([]byte, size)}
}

// vacant returns the unfilled tail of the buffer.
func (w *window) vacant() []byte { return w.buf[w.n:] }

// extend marks n additional bytes at the front of the vacant tail as valid.
func (w *window) extend(n int) { w.n += n }

// valid returns the currently valid contents.
func (w *window) valid() []byte { return w.buf[:w.n] }

// len returns the number of valid bytes.
func (w *window) len() int { return w.n }

// retainTail moves the trailing keep valid bytes (or all of them, if fewer
// remain) to the front of the buffer and returns how many bytes were
// dropped from the front.
func (w *window) retainTail(keep int) int {
	if keep > w.n {
		keep = w.n
	}
	dropped := w.n - keep
	copy(w.buf, w.buf[dropped:w.n])
	w.n = keep
	return dropped
}
