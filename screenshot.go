package decorated

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFinder locates font files by name (useful for avoiding font library dependencies).
type FontFinder interface {
	// Find returns the filesystem path to a font file matching the given name.
	Find(name string) (string, error)
}

// ScreenshotConfig controls how a String is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil and FontName is empty, uses basicfont.Face7x13.
	Font font.Face

	// FontFinder is used to find fonts by name. Optional.
	FontFinder FontFinder

	// FontName is the font name to find using FontFinder.
	FontName string

	// FontSize is the font size when using FontFinder. Default 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Columns wraps the content at this many cells. Zero disables wrapping.
	Columns int

	// Palette is the 256-color palette. If nil, uses Palette.
	Palette *[256]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// screenCell is one laid out content byte.
type screenCell struct {
	row, col int
	ch       byte
	state    ColorState
}

// layout places content bytes on a grid. Newlines start a new row; zero
// width bytes take no cell.
func (s *String) layout(columns int) (cells []screenCell, rows, cols int) {
	row, col := 0, 0
	for i, st := range s.States() {
		b := s.text[i]
		if b == '\n' {
			row++
			col = 0
			continue
		}
		if byteWidth(b) == 0 {
			continue
		}
		if columns > 0 && col >= columns {
			row++
			col = 0
		}
		cells = append(cells, screenCell{row: row, col: col, ch: b, state: st})
		col++
		cols = max(cols, col)
	}
	return cells, row + 1, cols
}

// Screenshot renders the String to an RGBA image using default settings (basicfont, default palette).
func (s *String) Screenshot() *image.RGBA {
	return s.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the String to an RGBA image with custom font and colors.
func (s *String) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil && cfg.FontFinder != nil && cfg.FontName != "" {
		size := cfg.FontSize
		if size == 0 {
			size = 14
		}
		if path, err := cfg.FontFinder.Find(cfg.FontName); err == nil {
			if loadedFace, err := LoadFont(path, size); err == nil {
				face = loadedFace
			}
		}
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &Palette
	}
	defaultFG := DefaultForeground
	if cfg.DefaultFG != nil {
		defaultFG = *cfg.DefaultFG
	}
	defaultBG := DefaultBackground
	if cfg.DefaultBG != nil {
		defaultBG = *cfg.DefaultBG
	}

	cells, rows, cols := s.layout(cfg.Columns)
	img := image.NewRGBA(image.Rect(0, 0, max(cols, 1)*cellWidth, rows*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(defaultBG), image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()
	for _, c := range cells {
		x := c.col * cellWidth
		y := c.row * cellHeight
		fg, bg := c.state.resolve(palette, defaultFG, defaultBG)

		draw.Draw(img, image.Rect(x, y, x+cellWidth, y+cellHeight), image.NewUniform(bg), image.Point{}, draw.Src)

		baseline := y + ascent
		if c.ch != ' ' {
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x, baseline),
			}
			d.DrawString(string(rune(c.ch)))
		}

		if c.state.On.Has(AttrUnderscore) {
			underlineY := min(baseline+2, y+cellHeight-1)
			for px := 0; px < cellWidth; px++ {
				img.Set(x+px, underlineY, fg)
			}
		}
	}

	return img
}
