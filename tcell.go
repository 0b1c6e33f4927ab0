package decorated

import "github.com/gdamore/tcell/v2"

// CellSetter is the part of tcell.Screen that Draw needs.
type CellSetter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Style converts a color state to a tcell style. Legacy and xterm colors map
// to palette colors so the terminal's own palette applies; named and hex
// colors are sent as true color.
func Style(st ColorState) tcell.Style {
	r := st.rendition()
	hilite := r.On.Has(AttrHilite)
	return tcell.StyleDefault.
		Foreground(tcellColor(r.Fg, hilite)).
		Background(tcellColor(r.Bg, false)).
		Bold(hilite).
		Reverse(r.On.Has(AttrInverse)).
		Blink(r.On.Has(AttrBlink)).
		Underline(r.On.Has(AttrUnderscore))
}

func tcellColor(c Color, hilite bool) tcell.Color {
	switch c.Kind {
	case ColorLegacy:
		id := legacyID(c.Letter)
		if hilite {
			id += 8
		}
		return tcell.PaletteColor(id)
	case ColorXterm:
		return tcell.PaletteColor(int(c.Index))
	case ColorNamed, ColorHex:
		return tcell.NewHexColor(int32(c.Value))
	}
	return tcell.ColorDefault
}

// Draw paints s at column x of row y. Newlines continue at column x of the
// next row and zero width bytes are skipped. It returns the number of rows used.
func Draw(screen CellSetter, x, y int, s *String) int {
	col, row := x, y
	for i, st := range s.States() {
		b := s.text[i]
		if b == '\n' {
			col = x
			row++
			continue
		}
		if byteWidth(b) == 0 {
			continue
		}
		screen.SetContent(col, row, rune(b), nil, Style(st))
		col++
	}
	return row - y + 1
}
