package decorated

import (
	"errors"
	"testing"
)

func TestBoundedBuffer(t *testing.T) {
	b := newBoundedBuffer(5)

	if !b.writeString("abc") {
		t.Fatal("writeString(\"abc\") refused")
	}
	if b.writeString("def") {
		t.Error("writeString(\"def\") accepted past the limit")
	}
	if b.writeByte('x') {
		t.Error("writeByte accepted after the buffer filled")
	}
	if b.size() != 3 {
		t.Errorf("size() = %d, want 3", b.size())
	}

	out, err := b.result()
	if !errors.Is(err, ErrCapacity) || out != "" {
		t.Errorf("result() = (%q, %v), want ErrCapacity", out, err)
	}
}

func TestBoundedBuffer_Exact(t *testing.T) {
	b := newBoundedBuffer(4)
	b.writeString("ab")
	b.writeByte('c')
	b.writeByte('d')

	out, err := b.result()
	if err != nil || out != "abcd" {
		t.Errorf("result() = (%q, %v), want %q", out, err, "abcd")
	}
}

func TestBoundedBuffer_WriteCode(t *testing.T) {
	tests := []struct {
		typ      byte
		code     string
		expected string
	}{
		{TypeColor, "hr", "\x02chr\x03"},
		{TypeHTML, "/b", "\x02p/b\x03"},
		{TypeEscape, "[1", "\x1b[1m"},
		{TypeColor, "", ""},
	}

	for _, tt := range tests {
		b := newBoundedBuffer(0)
		b.writeCode(tt.typ, tt.code)
		if out, _ := b.result(); out != tt.expected {
			t.Errorf("writeCode(%q, %q) = %q, want %q", tt.typ, tt.code, out, tt.expected)
		}
	}
}
