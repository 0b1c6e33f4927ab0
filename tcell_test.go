package decorated

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestStyle(t *testing.T) {
	tests := []struct {
		name  string
		st    ColorState
		fg    tcell.Color
		bg    tcell.Color
		attrs tcell.AttrMask
	}{
		{"null", ColorState{}, tcell.ColorDefault, tcell.ColorDefault, tcell.AttrNone},
		{"legacy", ColorState{Fg: LegacyColor('r'), Bg: LegacyColor('b')}, tcell.PaletteColor(1), tcell.PaletteColor(4), tcell.AttrNone},
		{"hilite", ColorState{On: AttrHilite, Fg: LegacyColor('r')}, tcell.PaletteColor(9), tcell.ColorDefault, tcell.AttrBold},
		{"xterm", ColorState{Fg: XtermColor(196)}, tcell.PaletteColor(196), tcell.ColorDefault, tcell.AttrNone},
		{"hex", ColorState{Fg: HexColor(0x123456)}, tcell.NewHexColor(0x123456), tcell.ColorDefault, tcell.AttrNone},
		{"reset", ColorState{Fg: Color{Kind: ColorReset}}, tcell.ColorDefault, tcell.ColorDefault, tcell.AttrNone},
		{"underline", ColorState{On: AttrUnderscore | AttrInverse}, tcell.ColorDefault, tcell.ColorDefault, tcell.AttrUnderline | tcell.AttrReverse},
	}

	for _, tt := range tests {
		fg, bg, attrs := Style(tt.st).Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("%s: colors = %v, %v, want %v, %v", tt.name, fg, bg, tt.fg, tt.bg)
		}
		if attrs&tt.attrs != tt.attrs {
			t.Errorf("%s: attrs = %v, want %v set", tt.name, attrs, tt.attrs)
		}
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	defer screen.Fini()

	rows := Draw(screen, 1, 0, Parse("\x02ch\x03\x02cr\x03Hi\x02c/\x03\x02c/\x03!\nok"))
	screen.Show()

	if rows != 2 {
		t.Errorf("Draw returned %d rows, want 2", rows)
	}

	ch, _, style, _ := screen.GetContent(1, 0)
	if ch != 'H' {
		t.Errorf("cell (1, 0) = %q, want 'H'", ch)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.PaletteColor(9) || attrs&tcell.AttrBold == 0 {
		t.Errorf("cell (1, 0) style = %v %v, want bright red bold", fg, attrs)
	}

	ch, _, style, _ = screen.GetContent(3, 0)
	if ch != '!' {
		t.Errorf("cell (3, 0) = %q, want '!'", ch)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorDefault {
		t.Errorf("cell (3, 0) fg = %v, want default", fg)
	}

	if ch, _, _, _ := screen.GetContent(1, 1); ch != 'o' {
		t.Errorf("cell (1, 1) = %q, want 'o'", ch)
	}
}
