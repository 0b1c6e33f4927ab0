package decorated

import "fmt"

// boundedBuffer collects output up to a fixed maximum length.
// Every write is all-or-nothing; once a write does not fit, the buffer is
// marked full and further writes are refused.
type boundedBuffer struct {
	buf  []byte
	max  int
	full bool
}

func newBoundedBuffer(limit int) *boundedBuffer {
	if limit <= 0 {
		limit = DefaultMaxLen
	}
	return &boundedBuffer{max: limit}
}

func (b *boundedBuffer) writeString(s string) bool {
	if b.full || len(b.buf)+len(s) > b.max {
		b.full = true
		return false
	}
	b.buf = append(b.buf, s...)
	return true
}

func (b *boundedBuffer) writeByte(c byte) bool {
	if b.full || len(b.buf)+1 > b.max {
		b.full = true
		return false
	}
	b.buf = append(b.buf, c)
	return true
}

// writeCode writes a node code in its encoded form.
func (b *boundedBuffer) writeCode(typ byte, code string) bool {
	if code == "" {
		return true
	}
	if typ == TypeEscape {
		return b.writeString(string(Esc) + code + "m")
	}
	return b.writeString(string(TagStart) + string(typ) + code + string(TagEnd))
}

func (b *boundedBuffer) size() int {
	return len(b.buf)
}

// result returns the collected output, or ErrCapacity if anything was refused.
func (b *boundedBuffer) result() (string, error) {
	if b.full {
		return "", fmt.Errorf("%w: output exceeds %d bytes", ErrCapacity, b.max)
	}
	return string(b.buf), nil
}
