package decorated

import "testing"

func TestReadSGR(t *testing.T) {
	tests := []struct {
		seq      string
		expected ColorState
	}{
		{"\x1b[31m", ColorState{Fg: LegacyColor('r')}},
		{"\x1b[1;31m", ColorState{On: AttrHilite, Fg: LegacyColor('r')}},
		{"\x1b[0m", ColorState{Off: AttrAll, Fg: Color{Kind: ColorReset}}},
		{"\x1b[91m", ColorState{On: AttrHilite, Fg: LegacyColor('r')}},
		{"\x1b[44m", ColorState{Bg: LegacyColor('b')}},
		{"\x1b[38;5;196m", ColorState{Fg: XtermColor(196)}},
		{"\x1b[48;2;1;2;3m", ColorState{Bg: HexColor(0x010203)}},
		{"\x1b[1m\x1b[4m", ColorState{On: AttrHilite | AttrUnderscore}},
		{"\x1b[7;5m", ColorState{On: AttrInverse | AttrBlink}},
		{"\x1b[22m", ColorState{Off: AttrHilite}},
		{"\x1b[39m", ColorState{Fg: Color{Kind: ColorDefault}}},
		{"[32m", ColorState{Fg: LegacyColor('g')}},
		{"\x1b]0;title\x07", ColorState{}},
		{"\x1b[2J", ColorState{}},
	}

	for _, tt := range tests {
		if got := ReadSGR(tt.seq); got != tt.expected {
			t.Errorf("ReadSGR(%q) = %+v, want %+v", tt.seq, got, tt.expected)
		}
	}
}

func TestSplitSGR(t *testing.T) {
	got := splitSGR("\x1b[1m\x1b[2J\x1b[31mtext")
	if len(got) != 2 || got[0] != "\x1b[1m" || got[1] != "\x1b[31m" {
		t.Errorf("splitSGR = %q, want [\"\\x1b[1m\" \"\\x1b[31m\"]", got)
	}
}

func TestApplySGR(t *testing.T) {
	outer := ColorState{On: AttrUnderscore, Fg: LegacyColor('g'), Bg: LegacyColor('b')}

	tests := []struct {
		seq      string
		expected ColorState
	}{
		{"\x1b[1m", ColorState{On: AttrUnderscore | AttrHilite, Fg: LegacyColor('g'), Bg: LegacyColor('b')}},
		{"\x1b[0m", ColorState{Fg: Color{Kind: ColorReset}}},
		{"\x1b[0;1m", ColorState{On: AttrHilite, Fg: Color{Kind: ColorReset}}},
		{"\x1b[0;31m", ColorState{Fg: LegacyColor('r')}},
		{"\x1b[0m\x1b[44m", ColorState{Fg: Color{Kind: ColorReset}, Bg: LegacyColor('b')}},
	}

	for _, tt := range tests {
		if got := applySGR(outer, tt.seq); got != tt.expected {
			t.Errorf("applySGR(%q) = %+v, want %+v", tt.seq, got, tt.expected)
		}
	}
}
