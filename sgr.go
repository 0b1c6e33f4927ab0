package decorated

import (
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Named color indices the decoder reports for SGR 39 and 49.
const (
	namedColorForeground = 256
	namedColorBackground = 257
)

// sgrHandler collects the character attributes of SGR sequences into a ColorState.
// Only validated SGR sequences are fed to the decoder, so the embedded
// Handler is never reached.
type sgrHandler struct {
	ansicode.Handler
	state ColorState
	reset bool
}

// ReadSGR decodes a run of legacy select-graphic-rendition sequences
// ("\x1b[1;31m\x1b[44m") into a ColorState. Anything that is not an SGR
// sequence is ignored. A reset (0) yields the reset state.
func ReadSGR(seq string) ColorState {
	st, _ := readSGR(seq)
	return st
}

// readSGR is ReadSGR that also reports whether the run contained a reset.
func readSGR(seq string) (ColorState, bool) {
	h := &sgrHandler{}
	decoder := ansicode.NewDecoder(h)
	for _, part := range splitSGR(seq) {
		_, _ = decoder.Write([]byte(part))
	}
	return h.state, h.reset
}

// applySGR applies an escape run on top of st. A reset in the run drops
// everything st had and keeps the attributes and colors that follow it.
func applySGR(st ColorState, seq string) ColorState {
	sgr, reset := readSGR(seq)
	if !reset {
		return Merge(st, sgr)
	}
	return ColorState{On: sgr.On, Fg: sgr.Fg, Bg: sgr.Bg}
}

// splitSGR returns the well-formed "ESC [ params m" sequences in s.
// Sequences may also be given without their leading ESC, the way legacy
// escape nodes store them.
func splitSGR(s string) []string {
	var parts []string
	for _, chunk := range strings.Split(s, string(Esc)) {
		if len(chunk) < 2 || chunk[0] != '[' {
			continue
		}
		end := strings.IndexByte(chunk, 'm')
		if end < 0 {
			continue
		}
		params := chunk[1:end]
		if strings.Trim(params, "0123456789;:") != "" {
			continue
		}
		parts = append(parts, string(Esc)+chunk[:end+1])
	}
	return parts
}

func (h *sgrHandler) Input(r rune) {}

func (h *sgrHandler) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	st := &h.state
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		*st = ColorState{Off: AttrAll, Fg: Color{Kind: ColorReset}}
		h.reset = true
	case ansicode.CharAttributeBold:
		st.turnOn(AttrHilite)
	case ansicode.CharAttributeUnderline:
		st.turnOn(AttrUnderscore)
	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		st.turnOn(AttrBlink)
	case ansicode.CharAttributeReverse:
		st.turnOn(AttrInverse)
	case ansicode.CharAttributeCancelBold, ansicode.CharAttributeCancelBoldDim:
		st.turnOff(AttrHilite)
	case ansicode.CharAttributeCancelUnderline:
		st.turnOff(AttrUnderscore)
	case ansicode.CharAttributeCancelBlink:
		st.turnOff(AttrBlink)
	case ansicode.CharAttributeCancelReverse:
		st.turnOff(AttrInverse)
	case ansicode.CharAttributeForeground:
		c, bright := sgrColor(attr, false)
		st.Fg = c
		if bright {
			st.turnOn(AttrHilite)
		}
	case ansicode.CharAttributeBackground:
		st.Bg, _ = sgrColor(attr, true)
	}
}

// sgrColor converts a decoded color attribute. Bright foreground colors
// (90-97) become their legacy letter plus hilite.
func sgrColor(attr ansicode.TerminalCharAttribute, background bool) (Color, bool) {
	switch {
	case attr.RGBColor != nil:
		return HexColor(uint32(attr.RGBColor.R)<<16 | uint32(attr.RGBColor.G)<<8 | uint32(attr.RGBColor.B)), false
	case attr.IndexedColor != nil:
		return XtermColor(uint8(attr.IndexedColor.Index)), false
	case attr.NamedColor != nil:
		n := int(*attr.NamedColor)
		switch {
		case n >= 0 && n < 8:
			return LegacyColor(legacyLetters[n]), false
		case n >= 8 && n < 16 && !background:
			return LegacyColor(legacyLetters[n-8]), true
		case n >= 8 && n < 16:
			return XtermColor(uint8(n)), false
		case n == namedColorForeground || n == namedColorBackground:
			return Color{Kind: ColorDefault}, false
		}
	}
	return Color{Kind: ColorDefault}, false
}

func (s *ColorState) turnOn(a Attr) {
	s.On |= a
	s.Off &^= a
}

func (s *ColorState) turnOff(a Attr) {
	s.Off |= a
	s.On &^= a
}
