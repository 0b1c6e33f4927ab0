package decorated

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrorColor is returned for colors that cannot be resolved (hot pink).
const ErrorColor uint32 = 0xff69b4

// ansiHilite marks a 16-color reduction that needs hilite to look right.
const ansiHilite = 0x100

// legacyLetters maps legacy color ids 0-7 to their grammar letters.
const legacyLetters = "xrgybmcw"

// colorEntry is one row of the color table.
type colorEntry struct {
	name  string
	hex   uint32
	xterm int
	ansi  int
}

// Palette is the 256-color xterm palette: 16 legacy colors (0-15, the second
// eight being the hilite variants), the 6x6x6 cube (16-231) and the grayscale ramp (232-255).
var Palette [256]color.RGBA

// DefaultForeground is the color of text without an explicit foreground.
var DefaultForeground = color.RGBA{192, 192, 192, 255}

// DefaultBackground is the color behind text without an explicit background.
var DefaultBackground = color.RGBA{0, 0, 0, 255}

func init() {
	for i := range Palette {
		Palette[i] = RGBA(colorTable[i].hex)
	}
}

var (
	tablesOnce   sync.Once
	colorsByName map[string]int
	colorsByHex  map[uint32][]int
)

// loadTables builds the name index and the hex cache on first use.
// Only named colors are cached by hex; xterm entries are addressed by index.
func loadTables() {
	tablesOnce.Do(func() {
		colorsByName = make(map[string]int, len(colorTable))
		colorsByHex = make(map[uint32][]int)
		for i := range colorTable {
			e := &colorTable[i]
			colorsByName[e.name] = i
			if i < 256 {
				continue
			}
			colorsByHex[e.hex] = append(colorsByHex[e.hex], i)
		}
		for _, list := range colorsByHex {
			slices.SortFunc(list, func(a, b int) int {
				return strings.Compare(colorTable[a].name, colorTable[b].name)
			})
		}
	})
}

// normalizeColorName lowercases a name and drops spaces ("Light Blue" -> "lightblue").
func normalizeColorName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// lookupColor returns the table index for a color name.
func lookupColor(name string) (int, bool) {
	loadTables()
	i, ok := colorsByName[normalizeColorName(name)]
	return i, ok
}

// LookupColor returns the 24-bit value of a named color ("red", "xterm196", "Light Blue").
func LookupColor(name string) (uint32, bool) {
	i, ok := lookupColor(name)
	if !ok {
		return 0, false
	}
	return colorTable[i].hex, true
}

// ColorNames returns the names of every named color with exactly this value, sorted.
func ColorNames(hex uint32) []string {
	loadTables()
	list := colorsByHex[hex]
	names := make([]string, len(list))
	for i, idx := range list {
		names[i] = colorTable[idx].name
	}
	return names
}

// HexFor resolves a color specifier to its 24-bit value.
// Legacy letters use the hilite variant of the palette when hilite is set.
// Specifiers without a value (none, reset, default) resolve to ErrorColor.
func HexFor(c Color, hilite bool) uint32 {
	switch c.Kind {
	case ColorLegacy:
		id := legacyID(c.Letter)
		if id < 0 {
			return ErrorColor
		}
		if hilite {
			id += 8
		}
		return colorTable[id].hex
	case ColorNamed, ColorHex:
		return c.Value
	case ColorXterm:
		return colorTable[c.Index].hex
	}
	return ErrorColor
}

// Nearest16 reduces a 24-bit value to a legacy color id (0-7).
// Exact named colors use their stored reduction, which may imply hilite for
// foregrounds; other values pick the closest of the eight base colors.
func Nearest16(hex uint32, background bool) (id int, hilite bool) {
	loadTables()
	if list := colorsByHex[hex]; len(list) > 0 {
		ansi := colorTable[list[0]].ansi
		return ansi & 0xff, !background && ansi&ansiHilite != 0
	}
	return nearestIn(hex, 0, 8), false
}

// Nearest256 reduces a 24-bit value to an xterm palette index.
// Exact named colors use their stored reduction; other values pick the
// closest entry of the cube and grayscale ramp (16-255).
func Nearest256(hex uint32) int {
	loadTables()
	if list := colorsByHex[hex]; len(list) > 0 {
		return colorTable[list[0]].xterm
	}
	return nearestIn(hex, 16, 256)
}

// NearestLab reduces a 24-bit value to the xterm palette index (16-255)
// closest in CIE L*a*b* space. It tracks perceived difference better than
// Nearest256 for dark and saturated colors, at a higher cost.
func NearestLab(hex uint32) int {
	target := labColor(hex)
	best, bestDist := 16, -1.0
	for i := 16; i < 256; i++ {
		d := target.DistanceLab(labColor(colorTable[i].hex))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func labColor(hex uint32) colorful.Color {
	return colorful.Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}

// nearestIn scans colorTable[from:to] for the smallest squared RGB distance.
// Ties keep the lowest index.
func nearestIn(hex uint32, from, to int) int {
	best, bestDist := from, -1
	for i := from; i < to; i++ {
		d := colorDistance(hex, colorTable[i].hex)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func colorDistance(a, b uint32) int {
	dr := int(a>>16&0xff) - int(b>>16&0xff)
	dg := int(a>>8&0xff) - int(b>>8&0xff)
	db := int(a&0xff) - int(b&0xff)
	return dr*dr + dg*dg + db*db
}

// legacyID returns the palette id (0-7) of a legacy letter of either case, or -1.
func legacyID(letter byte) int {
	return strings.IndexByte(legacyLetters, letter|0x20)
}

// RGBA converts a 24-bit value to an opaque color.RGBA.
func RGBA(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

// hexString formats a 24-bit value as #rrggbb.
func hexString(hex uint32) string {
	return fmt.Sprintf("#%06x", hex&0xffffff)
}
