package decorated

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Profile holds render settings for a client, loaded from TOML or YAML.
type Profile struct {
	// Capability is a capability name: plain, hilite, 16, 256, tags or html.
	Capability string `toml:"capability" yaml:"capability"`
	// MaxLen bounds content and output. Zero means DefaultMaxLen.
	MaxLen int `toml:"max_len" yaml:"max_len"`
	// HighlightStyle is the chroma style used by Highlight.
	HighlightStyle string `toml:"highlight_style" yaml:"highlight_style"`
	// Foreground and Background are #rrggbb defaults for screenshots.
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

// DefaultProfile returns the settings used when no profile is given.
func DefaultProfile() Profile {
	return Profile{
		Capability:     Capability16.String(),
		MaxLen:         DefaultMaxLen,
		HighlightStyle: DefaultHighlightStyle,
	}
}

// LoadProfile reads a profile file. The format is chosen by extension:
// .toml, or .yaml/.yml. Fields missing from the file keep their defaults.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	p, err := ParseProfile(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a profile in the given format ("toml", "yaml" or "yml")
// on top of DefaultProfile and validates it.
func ParseProfile(data []byte, format string) (Profile, error) {
	p := DefaultProfile()
	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = toml.Unmarshal(data, &p)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &p)
	default:
		return Profile{}, fmt.Errorf("unknown profile format %q", format)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("decoding %s: %w", format, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that every field holds a usable value.
func (p Profile) Validate() error {
	if _, err := ParseCapability(p.Capability); err != nil {
		return err
	}
	if p.MaxLen < 0 {
		return fmt.Errorf("max_len %d is negative", p.MaxLen)
	}
	if _, err := profileColor(p.Foreground, DefaultForeground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := profileColor(p.Background, DefaultBackground); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// Cap returns the profile's capability, falling back to Capability16.
func (p Profile) Cap() Capability {
	c, err := ParseCapability(p.Capability)
	if err != nil {
		return Capability16
	}
	return c
}

// Options returns the String options the profile implies.
func (p Profile) Options() []Option {
	return []Option{WithMaxLen(p.MaxLen)}
}

// ScreenshotConfig returns a screenshot configuration with the profile's default colors.
func (p Profile) ScreenshotConfig() *ScreenshotConfig {
	fg, _ := profileColor(p.Foreground, DefaultForeground)
	bg, _ := profileColor(p.Background, DefaultBackground)
	return &ScreenshotConfig{DefaultFG: &fg, DefaultBG: &bg}
}

func profileColor(hex string, def color.RGBA) (color.RGBA, error) {
	if hex == "" {
		return def, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return def, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
