package decorated

import (
	"fmt"
	"strconv"
	"strings"
)

// Capability selects the output dialect of Transition and Render.
type Capability uint8

const (
	// CapabilityPlain writes no decoration at all.
	CapabilityPlain Capability = iota
	// CapabilityHilite writes only the bold sequence.
	CapabilityHilite
	// Capability16 writes the eight legacy colors plus attributes.
	Capability16
	// Capability256 writes the xterm 256-color palette plus attributes.
	Capability256
	// CapabilityTags writes color tags in the encoded input dialect.
	CapabilityTags
	// CapabilityHTML writes 16-color escapes, passes HTML tags through as
	// <tag> and escapes text for a Pueblo client.
	CapabilityHTML
)

var capabilityNames = [...]string{
	CapabilityPlain:  "plain",
	CapabilityHilite: "hilite",
	Capability16:     "16",
	Capability256:    "256",
	CapabilityTags:   "tags",
	CapabilityHTML:   "html",
}

func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// ParseCapability returns the capability with the given name
// ("plain", "hilite", "16", "256", "tags" or "html").
func ParseCapability(name string) (Capability, error) {
	for i, n := range capabilityNames {
		if strings.EqualFold(n, name) {
			return Capability(i), nil
		}
	}
	return CapabilityPlain, fmt.Errorf("unknown capability %q", name)
}

const (
	ansiReset = "\x1b[0m"
	tagsReset = "\x02c/a\x03"
)

// Transition returns the codes that change a display showing prev into one
// showing next, and the state the display shows afterwards.
//
// Escape sequences only add, so when next drops an attribute or a color
// that prev has, a full reset is written first and the change is computed
// from the null state. The returned state is the baseline for the next call;
// it includes hilite when a 16-color reduction implied it. An implied hilite
// in prev is kept without a reset while next's foreground still implies it.
func Transition(prev, next ColorState, c Capability) (string, ColorState) {
	cur := next.rendition()
	if c == CapabilityPlain {
		return "", cur
	}
	old := prev.rendition()

	implied := impliedHilite(cur, c)
	dropped := old.On &^ cur.On
	if implied {
		dropped &^= AttrHilite
	}

	var sb strings.Builder
	if dropped != 0 || (old.Fg.IsSet() && !cur.Fg.IsSet()) || (old.Bg.IsSet() && !cur.Bg.IsSet()) {
		if c == CapabilityTags {
			sb.WriteString(tagsReset)
		} else {
			sb.WriteString(ansiReset)
		}
		old = ColorState{}
	}
	if implied && old.On.Has(AttrHilite) {
		cur.On |= AttrHilite
	}
	if old == cur {
		return sb.String(), cur
	}

	switch c {
	case CapabilityHilite:
		if cur.On.Has(AttrHilite) && !old.On.Has(AttrHilite) {
			sb.WriteString("\x1b[1m")
		}
	case CapabilityTags:
		delta := ColorState{On: cur.On &^ old.On}
		if cur.Fg != old.Fg {
			delta.Fg = cur.Fg
		}
		if cur.Bg != old.Bg {
			delta.Bg = cur.Bg
		}
		sb.WriteByte(TagStart)
		sb.WriteByte(TypeColor)
		sb.WriteString(delta.Letters())
		sb.WriteByte(TagEnd)
	case Capability256:
		if cur.Fg.extended() || cur.Bg.extended() {
			cur = write256(&sb, old, cur)
			break
		}
		cur = write16(&sb, old, cur)
	default:
		cur = write16(&sb, old, cur)
	}
	return sb.String(), cur
}

// impliedHilite reports whether writing st's foreground for c turns hilite on.
func impliedHilite(st ColorState, c Capability) bool {
	switch c {
	case Capability16, CapabilityHTML:
	case Capability256:
		if st.Fg.extended() || st.Bg.extended() {
			return false
		}
	default:
		return false
	}
	if !st.Fg.IsSet() {
		return false
	}
	_, hilite := ansi16(st.Fg, false)
	return hilite
}

// newAttrCodes returns the SGR parameters of attributes turned on between old and cur.
func newAttrCodes(old, cur ColorState) []string {
	var codes []string
	for _, info := range attrSGROrder {
		if cur.On.Has(info.attr) && !old.On.Has(info.attr) {
			codes = append(codes, strconv.Itoa(info.sgr))
		}
	}
	return codes
}

func write16(sb *strings.Builder, old, cur ColorState) ColorState {
	codes := newAttrCodes(old, cur)
	if cur.Fg.IsSet() {
		id, hilite := ansi16(cur.Fg, false)
		if cur.Fg != old.Fg {
			codes = append(codes, strconv.Itoa(30+id))
		}
		if hilite && !cur.On.Has(AttrHilite) {
			codes = append(codes, "1")
			cur.On |= AttrHilite
		}
	}
	if cur.Bg.IsSet() && cur.Bg != old.Bg {
		id, _ := ansi16(cur.Bg, true)
		codes = append(codes, strconv.Itoa(40+id))
	}
	writeCSI(sb, codes)
	return cur
}

func write256(sb *strings.Builder, old, cur ColorState) ColorState {
	codes := newAttrCodes(old, cur)
	fg, bg := -1, -1
	if cur.Fg.IsSet() && cur.Fg != old.Fg {
		if cur.Fg.extended() {
			fg = ansi256(cur.Fg)
		} else {
			id, _ := ansi16(cur.Fg, false)
			codes = append(codes, strconv.Itoa(30+id))
		}
	}
	if cur.Bg.IsSet() && cur.Bg != old.Bg {
		if cur.Bg.extended() {
			bg = ansi256(cur.Bg)
		} else {
			id, _ := ansi16(cur.Bg, true)
			codes = append(codes, strconv.Itoa(40+id))
		}
	}
	writeCSI(sb, codes)
	if fg >= 0 {
		fmt.Fprintf(sb, "\x1b[38;5;%dm", fg)
	}
	if bg >= 0 {
		fmt.Fprintf(sb, "\x1b[48;5;%dm", bg)
	}
	return cur
}

func writeCSI(sb *strings.Builder, codes []string) {
	if len(codes) == 0 {
		return
	}
	sb.WriteString("\x1b[")
	sb.WriteString(strings.Join(codes, ";"))
	sb.WriteByte('m')
}

// ansi16 reduces a color to a legacy id, and whether the foreground needs hilite.
func ansi16(c Color, background bool) (int, bool) {
	switch c.Kind {
	case ColorLegacy:
		return legacyID(c.Letter), false
	case ColorXterm:
		ansi := colorTable[c.Index].ansi
		return ansi & 0xff, !background && ansi&ansiHilite != 0
	}
	return Nearest16(HexFor(c, false), background)
}

func ansi256(c Color) int {
	if c.Kind == ColorXterm {
		return int(c.Index)
	}
	return Nearest256(HexFor(c, false))
}
