package tapejson

// rawCursor is the abstraction the tape builder uses to walk the input
// buffer. The unchecked implementation trusts that it is never advanced
// past len(buffer)+padding and is the fast path; the checked implementation
// validates every access and is used in debug/fuzz builds (WithChecked)
// where a bug in the builder should panic loudly rather than read out of
// bounds.
//
// Both implementations present the same interface: never advance past
// N + padding, and padding is always a non-structural sentinel.
type rawCursor interface {
	// byteAt returns the byte at absolute offset i.
	byteAt(i int) byte
	// len returns the logical length of the buffer (excluding padding).
	len() int
}

type uncheckedCursor struct {
	buf []byte
}

func (c uncheckedCursor) byteAt(i int) byte { return c.buf[i] }
func (c uncheckedCursor) len() int          { return len(c.buf) }

type checkedCursor struct {
	buf []byte
}

func (c checkedCursor) byteAt(i int) byte {
	if i < 0 || i >= len(c.buf) {
		panic("tapejson: checked cursor read out of bounds")
	}
	return c.buf[i]
}
func (c checkedCursor) len() int { return len(c.buf) }

func newCursor(buf []byte, checked bool) rawCursor {
	if checked {
		return checkedCursor{buf: buf}
	}
	return uncheckedCursor{buf: buf}
}
