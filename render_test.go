package decorated

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		c        Capability
		expected string
	}{
		{"16 named", "\x02c+red\x03Hi\x02c/\x03", Capability16, "\x1b[31;1mHi\x1b[0m"},
		{"plain", "\x02c+red\x03Hi\x02c/\x03", CapabilityPlain, "Hi"},
		{"256 named", "\x02c+red\x03Hi\x02c/\x03", Capability256, "\x1b[38;5;196mHi\x1b[0m"},
		{"unchanged text", "no markup", Capability16, "no markup"},
		{"nested", "\x02ch\x03a\x02cr\x03b\x02c/\x03c\x02c/\x03", Capability16, "\x1b[1ma\x1b[31mb\x1b[0m\x1b[1mc\x1b[0m"},
		{"legacy escapes", "a\x1b[1mb\x1b[0mc", Capability16, "a\x1b[1mb\x1b[0mc"},
		{"legacy reset then bold", "a\x1b[31mb\x1b[0;1mc", Capability16, "a\x1b[31mb\x1b[0m\x1b[1mc\x1b[0m"},
		{"nested reset inherits nothing", "\x02cr\x03a\x02cnhB\x03b\x02c/\x03\x02c/\x03", Capability16, "\x1b[31ma\x1b[0mb"},
		{"implied hilite kept", "\x02c+red\x03a\x02cu\x03b\x02c/\x03\x02c/\x03", Capability16, "\x1b[31;1ma\x1b[4mb\x1b[0m"},
		{"html dropped", "\x02pb\x03x\x02p/b\x03", Capability16, "x"},
		{"html passthrough", "\x02pb\x03x\x02p/b\x03", CapabilityHTML, "<b>x</b>"},
		{"html escaping", "a<b", CapabilityHTML, "a&lt;b"},
		{"tags passthrough", "\x02pb\x03x\x02p/b\x03", CapabilityTags, "\x02pb\x03x\x02p/b\x03"},
		{"tags", "\x02ch\x03a\x02cr\x03b\x02c/\x03\x02c/\x03", CapabilityTags, "\x02ch\x03a\x02cr\x03b\x02c/a\x03"},
		{"bad spec ignored", "\x02c+nosuch\x03x\x02c/\x03", Capability16, "x"},
	}

	for _, tt := range tests {
		got, err := Render(tt.src, tt.c)
		if err != nil {
			t.Errorf("%s: Render error: %v", tt.name, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("%s: Render(%q) = %q, want %q", tt.name, tt.src, got, tt.expected)
		}
	}
}

func TestRender_Capacity(t *testing.T) {
	s := Parse("\x02c+red\x03Hi\x02c/\x03", WithMaxLen(4))

	if _, err := s.Render(Capability16); !errors.Is(err, ErrCapacity) {
		t.Errorf("Render error = %v, want ErrCapacity", err)
	}
}

func TestStates(t *testing.T) {
	s := Parse("\x02ch\x03a\x02cr\x03b\x02c/\x03c\x02c/\x03d")

	tests := []struct {
		index    int
		expected ColorState
	}{
		{0, ColorState{On: AttrHilite}},
		{1, ColorState{On: AttrHilite, Fg: LegacyColor('r')}},
		{2, ColorState{On: AttrHilite}},
		{3, ColorState{}},
		{9, ColorState{}},
	}

	for _, tt := range tests {
		if got := s.StateAt(tt.index); got != tt.expected {
			t.Errorf("StateAt(%d) = %+v, want %+v", tt.index, got, tt.expected)
		}
	}
	if n := len(s.States()); n != 4 {
		t.Errorf("len(States()) = %d, want 4", n)
	}
}

func TestStates_EscapeUntilNextTag(t *testing.T) {
	s := Parse("\x02cg\x03a\x1b[1mb\x02cu\x03c\x02c/\x03d\x02c/\x03")

	tests := []struct {
		index    int
		expected ColorState
	}{
		{0, ColorState{Fg: LegacyColor('g')}},
		{1, ColorState{On: AttrHilite, Fg: LegacyColor('g')}},
		{2, ColorState{On: AttrUnderscore, Fg: LegacyColor('g')}},
		{3, ColorState{Fg: LegacyColor('g')}},
	}

	for _, tt := range tests {
		if got := s.StateAt(tt.index); got != tt.expected {
			t.Errorf("StateAt(%d) = %+v, want %+v", tt.index, got, tt.expected)
		}
	}
}
