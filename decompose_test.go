package decorated

import (
	"errors"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"plain", "hello world", "hello world"},
		{"color", "\x02cr\x03Hi\x02c/\x03 there", "[ansi(r,Hi)]%bthere"},
		{"nested", "\x02ch\x03a \x02cr\x03b\x02c/\x03c\x02c/\x03", "[ansi(h,a%b)][ansi(hr,b)][ansi(h,c)]"},
		{"specials", "a(b)[c]", `a\(b\)\[c\]`},
		{"more specials", "{x}$^%,;\\", `\{x\}\$\^\%\,\;\\`},
		{"space run", "a     b", "a[space(5)]b"},
		{"two spaces", "a  b", "a %bb"},
		{"leading spaces", "  a", "%b a"},
		{"trailing space", "a ", "a%b"},
		{"newline tab", "a\nb\tc", "a%rb%tc"},
		{"beeps", "\x07\x07\x07\x07\x07\x07\x07", "[beep(5)][beep(2)]"},
		{"tag", "\x02pa href=x\x03link\x02p/a\x03", `[tag(a,href="x")]link[endtag(a)]`},
		{"unclosed tag", "\x02pb\x03bold", "[tag(b)]bold[endtag(b)]"},
		{"escapes", "a\x1b[31mb\x1b[0mc", "a[ansi(r,b)][ansi(n,c)]"},
		{"xterm", "\x02c196\x03x\x02c/\x03", "[ansi(+xterm196,x)]"},
	}

	for _, tt := range tests {
		if got := Parse(tt.src).Decompose(); got != tt.expected {
			t.Errorf("%s: Decompose(%q) = %q, want %q", tt.name, tt.src, got, tt.expected)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"[ansi(r,Hi)]%bthere", "\x02cr\x03Hi\x02c/\x03 there"},
		{`a\(b\)`, "a(b)"},
		{"a[space(3)]b", "a   b"},
		{"[beep(2)]", "\x07\x07"},
		{"%r%t%b", "\n\t "},
		{`[tag(a,href="x")]y[endtag(a)]`, "\x02pa href=\"x\"\x03y\x02p/a\x03"},
		{"[ansi(h,a[ansi(r,b)])]", "\x02ch\x03a\x02cr\x03b\x02c/\x03\x02c/\x03"},
	}

	for _, tt := range tests {
		got, err := Compose(tt.src)
		if err != nil {
			t.Errorf("Compose(%q) error: %v", tt.src, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Compose(%q) = %q, want %q", tt.src, got, tt.expected)
		}
	}
}

func TestCompose_Malformed(t *testing.T) {
	inputs := []string{
		"[ansi(r,Hi)",
		"a(b",
		"[foo(1)]",
		"%q",
		"[ansi(+nosuch,x)]",
		`abc\`,
		"[space(0)]",
		"[space]",
		"[tag(a]",
		"[endtag()]",
	}

	for _, src := range inputs {
		if _, err := Compose(src); !errors.Is(err, ErrMalformedSource) {
			t.Errorf("Compose(%q) error = %v, want ErrMalformedSource", src, err)
		}
	}
}

func TestDecompose_FixedPoint(t *testing.T) {
	inputs := []string{
		"hello world",
		"\x02ch\x03a \x02cr\x03b\x02c/\x03c\x02c/\x03",
		"\x02pb\x03bold\x02p/b\x03 x",
		"a\x1b[31mb\x1b[0mc",
		"  lead (and) trail  ",
		"\x02c+red/+blue\x03x\x02c/\x03\x07",
		"\x02cnhB\x03x\x02c/\x03",
		"\x02pa href=x\x03link\x02p/a\x03",
	}

	for _, src := range inputs {
		d1 := Parse(src).Decompose()
		composed, err := Compose(d1)
		if err != nil {
			t.Errorf("Compose(%q) error: %v", d1, err)
			continue
		}
		d2 := Parse(composed).Decompose()
		if d2 != d1 {
			t.Errorf("Decompose is not stable for %q: %q then %q", src, d1, d2)
		}
		if got := Parse(composed).Text(); got != Parse(src).Text() {
			t.Errorf("Compose(Decompose(%q)).Text() = %q, want %q", src, got, Parse(src).Text())
		}
	}
}
