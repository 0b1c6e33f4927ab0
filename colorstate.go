package decorated

import (
	"image/color"
	"strings"
)

// ColorState is the decoration of a region: attributes explicitly turned on,
// attributes explicitly turned off, and the foreground and background.
// The zero value is the null state (nothing set, everything inherited).
type ColorState struct {
	On  Attr
	Off Attr
	Fg  Color
	Bg  Color
}

// IsNull returns true if the state sets nothing at all.
func (s ColorState) IsNull() bool {
	return s.On == 0 && s.Off == 0 && !s.Fg.IsSet() && !s.Bg.IsSet()
}

// HasAttr returns true if the attribute is turned on.
func (s ColorState) HasAttr(a Attr) bool {
	return s.On.Has(a)
}

// Merge computes the state of inner nested inside outer.
//
// An inner reset inherits nothing from outer. Otherwise inner keeps what it
// sets explicitly and takes everything else from outer: attributes inner turns
// off are removed from outer's, attributes it turns on are added, and empty
// colors are inherited.
func Merge(outer, inner ColorState) ColorState {
	if inner.Fg.Kind == ColorReset {
		return ColorState{Fg: inner.Fg}
	}
	merged := ColorState{
		On:  (outer.On &^ inner.Off) | inner.On,
		Off: inner.Off | (outer.Off &^ inner.On),
		Fg:  inner.Fg,
		Bg:  inner.Bg,
	}
	if !merged.Fg.IsSet() {
		merged.Fg = outer.Fg
	}
	if !merged.Bg.IsSet() {
		merged.Bg = outer.Bg
	}
	return merged
}

// rendition reduces a state to what a terminal can show: attributes that are
// on, and concrete colors.
func (s ColorState) rendition() ColorState {
	return ColorState{On: s.On, Fg: s.Fg.concrete(), Bg: s.Bg.concrete()}
}

// Letters encodes the state in color grammar form, so that
// ParseColorSpec(s.Letters()) yields an equivalent state.
func (s ColorState) Letters() string {
	var sb strings.Builder
	reset := s.Fg.Kind == ColorReset
	if reset {
		sb.WriteByte('n')
	}
	for _, info := range attrLetterOrder {
		if s.On.Has(info.attr) {
			sb.WriteByte(info.on)
		}
	}
	if !reset {
		for _, info := range attrLetterOrder {
			if s.Off.Has(info.attr) {
				sb.WriteByte(info.off)
			}
		}
	}
	switch s.Bg.Kind {
	case ColorLegacy:
		sb.WriteByte(s.Bg.Letter &^ 0x20)
	case ColorDefault:
		sb.WriteByte('D')
	}
	if !reset {
		sb.WriteString(s.Fg.String())
	}
	if s.Bg.extended() {
		sb.WriteByte('!')
		sb.WriteString(s.Bg.String())
	}
	return sb.String()
}

// String returns the state in color grammar form.
func (s ColorState) String() string {
	return s.Letters()
}

// Colors returns the display colors of the state with the default palette.
func (s ColorState) Colors() (fg, bg color.RGBA) {
	return s.resolve(&Palette, DefaultForeground, DefaultBackground)
}

// resolve returns the display colors of the state. Unset channels use the
// defaults, hilite selects the bright variant of a legacy foreground and
// inverse swaps the two.
func (s ColorState) resolve(palette *[256]color.RGBA, defFg, defBg color.RGBA) (fg, bg color.RGBA) {
	fg = resolveColor(s.Fg, s.On.Has(AttrHilite), palette, defFg)
	bg = resolveColor(s.Bg, false, palette, defBg)
	if s.On.Has(AttrInverse) {
		fg, bg = bg, fg
	}
	return fg, bg
}

func resolveColor(c Color, hilite bool, palette *[256]color.RGBA, def color.RGBA) color.RGBA {
	switch c.Kind {
	case ColorLegacy:
		id := legacyID(c.Letter)
		if id < 0 {
			return def
		}
		if hilite {
			id += 8
		}
		return palette[id]
	case ColorXterm:
		return palette[c.Index]
	case ColorNamed, ColorHex:
		return RGBA(c.Value)
	}
	return def
}
