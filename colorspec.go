package decorated

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind identifies what a Color specifier holds.
type ColorKind uint8

const (
	// ColorNone is an empty specifier: the channel is inherited.
	ColorNone ColorKind = iota
	// ColorReset is the explicit "normal" sentinel (letter n).
	ColorReset
	// ColorDefault selects the terminal default color (letters d and D).
	ColorDefault
	// ColorLegacy is one of the eight legacy letters.
	ColorLegacy
	// ColorNamed is an entry of the color table, resolved to its value.
	ColorNamed
	// ColorHex is an arbitrary 24-bit value.
	ColorHex
	// ColorXterm is an index into the 256-color palette.
	ColorXterm
)

// Color is a foreground or background specifier.
type Color struct {
	Kind ColorKind
	// Letter is the lowercase legacy letter for ColorLegacy.
	Letter byte
	// Name is the normalized table name for ColorNamed.
	Name string
	// Value is the 24-bit value for ColorNamed and ColorHex.
	Value uint32
	// Index is the palette index for ColorXterm.
	Index uint8
}

// IsSet returns true unless the specifier is empty.
func (c Color) IsSet() bool {
	return c.Kind != ColorNone
}

// extended reports whether the specifier needs more than the legacy palette.
func (c Color) extended() bool {
	return c.Kind == ColorNamed || c.Kind == ColorHex || c.Kind == ColorXterm
}

// concrete drops specifiers that mean "no color" for rendering purposes.
func (c Color) concrete() Color {
	if c.Kind == ColorReset || c.Kind == ColorDefault {
		return Color{}
	}
	return c
}

// String returns the specifier in grammar form, as used for foregrounds.
func (c Color) String() string {
	switch c.Kind {
	case ColorReset:
		return "n"
	case ColorDefault:
		return "d"
	case ColorLegacy:
		return string(c.Letter)
	case ColorNamed:
		return "+" + c.Name
	case ColorHex:
		return hexString(c.Value)
	case ColorXterm:
		return "+xterm" + strconv.Itoa(int(c.Index))
	}
	return ""
}

// LegacyColor returns the specifier for a legacy letter (xrgybmcw, either case).
func LegacyColor(letter byte) Color {
	return Color{Kind: ColorLegacy, Letter: letter | 0x20}
}

// HexColor returns the specifier for a 24-bit value.
func HexColor(hex uint32) Color {
	return Color{Kind: ColorHex, Value: hex & 0xffffff}
}

// XtermColor returns the specifier for a palette index.
func XtermColor(index uint8) Color {
	return Color{Kind: ColorXterm, Index: index}
}

// NamedColor returns the specifier for a table name. Names of the form
// xtermN resolve to palette indices.
func NamedColor(name string) (Color, bool) {
	i, ok := lookupColor(name)
	if !ok {
		return Color{}, false
	}
	e := colorTable[i]
	if i < 256 {
		return XtermColor(uint8(e.xterm)), true
	}
	return Color{Kind: ColorNamed, Name: e.name, Value: e.hex}, true
}

// ParseColorSpec parses the body of a color region.
//
// Whitespace separates regions. Outside an extended region, single letters
// apply: xrgybmcw set the foreground and XRGYBMCW the background, d and D pick
// the default colors, n and N reset everything, f h i u turn blink, hilite,
// inverse and underscore on and F H I U turn them off. Any of + # < 0-9 / !
// starts an extended region that lasts until the next whitespace:
//
//	+name        a color table name (including xterm0..xterm255)
//	#RRGGBB      a 24-bit value
//	<#RRGGBB>    the same, bracketed
//	<R G B>      decimal components 0-255
//	0xN 0xNN     an xterm index in hex
//	0xRGB        a short 24-bit value, each digit repeated
//	0xRRGGBB     a 24-bit value
//	N            a decimal xterm index 0-255
//	/ or !       the next specifier applies to the background
//
// Malformed extended regions fail with ErrInvalidColor.
func ParseColorSpec(spec string) (ColorState, error) {
	var st ColorState
	target := &st.Fg
	extended := false

	for i := 0; i < len(spec) && spec[i] != TagEnd; {
		if isSpace(spec[i]) {
			i++
			extended = false
			continue
		}
		c := spec[i]

		if !extended {
			switch {
			case c == 'n' || c == 'N':
				st = ColorState{Off: AttrAll, Fg: Color{Kind: ColorReset}}
			case c == 'd':
				st.Fg = Color{Kind: ColorDefault}
			case c == 'D':
				st.Bg = Color{Kind: ColorDefault}
			case legacyID(c) >= 0 && c >= 'a':
				st.Fg = LegacyColor(c)
			case legacyID(c) >= 0:
				st.Bg = LegacyColor(c)
			case strings.IndexByte("+#</!0123456789", c) >= 0:
				extended = true
				target = &st.Fg
				continue
			default:
				if a, on, ok := attrForLetter(c); ok {
					if on {
						st.On |= a
						st.Off &^= a
					} else {
						st.Off |= a
						st.On &^= a
					}
				}
			}
			i++
			continue
		}

		var (
			col Color
			err error
		)
		switch {
		case c == '/' || c == '!':
			target = &st.Bg
			i++
			continue
		case c == '+':
			end := endOfColor(spec, i+1, false)
			col, err = parseColorName(spec[i+1 : end])
			i = end
		case c == '#':
			end := endOfColor(spec, i+1, false)
			col, err = parseHexDigits(spec[i+1:end], 6)
			i = end
		case c == '<':
			end := endOfColor(spec, i, true)
			col, err = parseAngle(spec[i:end])
			i = end
		case c == '0' && i+1 < len(spec) && (spec[i+1] == 'x' || spec[i+1] == 'X'):
			end := endOfColor(spec, i, false)
			col, err = parsePrefixedHex(spec[i+2 : end])
			i = end
		case c >= '0' && c <= '9':
			end := endOfColor(spec, i, false)
			col, err = parseXtermIndex(spec[i:end])
			i = end
		default:
			err = fmt.Errorf("%w: unexpected %q in %q", ErrInvalidColor, c, spec)
		}
		if err != nil {
			return ColorState{}, err
		}
		*target = col
	}
	return st, nil
}

// MustParseColorSpec is like ParseColorSpec but panics on error.
func MustParseColorSpec(spec string) ColorState {
	st, err := ParseColorSpec(spec)
	if err != nil {
		panic(err)
	}
	return st
}

// endOfColor returns the offset just past an extended color starting at i.
// Bracketed colors end after '>'; others stop at whitespace.
func endOfColor(s string, i int, angle bool) int {
	for i < len(s) {
		c := s[i]
		if c == '/' || c == TagEnd || c == '!' {
			return i
		}
		if angle {
			if c == '>' {
				return i + 1
			}
		} else if isSpace(c) {
			return i
		}
		i++
	}
	return i
}

func parseColorName(name string) (Color, error) {
	col, ok := NamedColor(name)
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, name)
	}
	return col, nil
}

// parseHexDigits parses exactly n hex digits (3 or 6) into a 24-bit color.
func parseHexDigits(digits string, n int) (Color, error) {
	if len(digits) != n || !isHexDigits(digits) {
		return Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidColor, digits)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return HexColor(uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
}

func parsePrefixedHex(digits string) (Color, error) {
	if !isHexDigits(digits) {
		return Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidColor, digits)
	}
	switch len(digits) {
	case 1, 2:
		n, _ := strconv.ParseUint(digits, 16, 8)
		return XtermColor(uint8(n)), nil
	case 3, 6:
		return parseHexDigits(digits, len(digits))
	}
	return Color{}, fmt.Errorf("%w: bad hex color length %q", ErrInvalidColor, digits)
}

func parseXtermIndex(digits string) (Color, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 255 || strings.ContainsAny(digits, "+-") {
		return Color{}, fmt.Errorf("%w: bad xterm index %q", ErrInvalidColor, digits)
	}
	return XtermColor(uint8(n)), nil
}

// parseAngle parses <#RRGGBB> or <R G B>.
func parseAngle(body string) (Color, error) {
	if !strings.HasSuffix(body, ">") {
		return Color{}, fmt.Errorf("%w: unterminated %q", ErrInvalidColor, body)
	}
	inner := strings.TrimSpace(body[1 : len(body)-1])
	if strings.HasPrefix(inner, "#") {
		return parseHexDigits(strings.TrimSpace(inner[1:]), 6)
	}
	fields := strings.Fields(inner)
	if len(fields) != 3 {
		return Color{}, fmt.Errorf("%w: bad triple %q", ErrInvalidColor, body)
	}
	var hex uint32
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 255 || strings.ContainsAny(f, "+-") {
			return Color{}, fmt.Errorf("%w: bad component %q", ErrInvalidColor, f)
		}
		hex = hex<<8 | uint32(n)
	}
	return HexColor(hex), nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
