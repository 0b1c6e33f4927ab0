package decorated

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestParseProfile_TOML(t *testing.T) {
	data := []byte("capability = \"256\"\nmax_len = 100\n")

	p, err := ParseProfile(data, "toml")
	if err != nil {
		t.Fatalf("ParseProfile error: %v", err)
	}
	if p.Cap() != Capability256 {
		t.Errorf("Cap() = %v, want 256", p.Cap())
	}
	if p.MaxLen != 100 {
		t.Errorf("MaxLen = %d, want 100", p.MaxLen)
	}
	if p.HighlightStyle != DefaultHighlightStyle {
		t.Errorf("HighlightStyle = %q, want default", p.HighlightStyle)
	}

	s := Parse("abc", p.Options()...)
	if s.MaxLen() != 100 {
		t.Errorf("MaxLen() = %d, want 100", s.MaxLen())
	}
}

func TestParseProfile_YAML(t *testing.T) {
	data := []byte("capability: tags\nforeground: \"#ffffff\"\n")

	p, err := ParseProfile(data, "yml")
	if err != nil {
		t.Fatalf("ParseProfile error: %v", err)
	}
	if p.Cap() != CapabilityTags {
		t.Errorf("Cap() = %v, want tags", p.Cap())
	}
	cfg := p.ScreenshotConfig()
	if *cfg.DefaultFG != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("DefaultFG = %v, want white", *cfg.DefaultFG)
	}
	if *cfg.DefaultBG != DefaultBackground {
		t.Errorf("DefaultBG = %v, want %v", *cfg.DefaultBG, DefaultBackground)
	}
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"unknown capability", "capability = \"truecolor\"\n", "toml"},
		{"negative max_len", "max_len = -1\n", "toml"},
		{"bad color", "background: \"#zz\"\n", "yaml"},
		{"bad toml", "capability = \n", "toml"},
		{"unknown format", "{}", "json"},
	}

	for _, tt := range tests {
		if _, err := ParseProfile([]byte(tt.data), tt.format); err == nil {
			t.Errorf("%s: ParseProfile error = nil, want error", tt.name)
		}
	}

	_, err := ParseProfile([]byte("background: \"#zz\"\n"), "yaml")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("bad color error = %v, want ErrInvalidColor", err)
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.toml")
	if err := os.WriteFile(path, []byte("capability = \"html\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if p.Cap() != CapabilityHTML {
		t.Errorf("Cap() = %v, want html", p.Cap())
	}

	if _, err := LoadProfile(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadProfile(missing) error = %v, want not exist", err)
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if p.Cap() != Capability16 {
		t.Errorf("Cap() = %v, want 16", p.Cap())
	}
}
