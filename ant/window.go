package ant

// window is a fixed-capacity ring of the most recently visited vertices.
// Pushing into a full window evicts the oldest entry.
type window struct {
	buf  []int
	head int // index of the oldest entry
	size int
}

func newWindow(capacity int) *window {
	return &window{buf: make([]int, capacity)}
}

func (w *window) push(v int) {
	if len(w.buf) == 0 {
		return
	}
	if w.size < len(w.buf) {
		w.buf[(w.head+w.size)%len(w.buf)] = v
		w.size++

		return
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

// slice returns the entries oldest first, with one spare slot for closure.
func (w *window) slice() []int {
	out := make([]int, w.size, w.size+1)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}

	return out
}
