package decorated

import (
	"fmt"
	"image/color"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns per-byte data and the node table.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a JSON-friendly view of a String.
type Snapshot struct {
	Text     string            `json:"text"`
	Length   int               `json:"length"`
	Width    int               `json:"width"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
	Nodes    []SnapshotNode    `json:"nodes,omitempty"`
}

// SnapshotSegment is a run of text with one style.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotCell is a single content byte with its style and owner.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Owner      int           `json:"owner"`
	Width      int           `json:"width"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold      bool `json:"bold,omitempty"`
	Underline bool `json:"underline,omitempty"`
	Blink     bool `json:"blink,omitempty"`
	Reverse   bool `json:"reverse,omitempty"`
}

// SnapshotNode is one entry of the node table.
type SnapshotNode struct {
	Type   string `json:"type"`
	Kind   string `json:"kind"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Parent int    `json:"parent"`
	Start  int    `json:"start"`
}

// Snapshot creates a snapshot of the String.
// The detail parameter controls how much information is included.
func (s *String) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Text:   s.Text(),
		Length: s.Len(),
		Width:  s.Width(),
	}

	switch detail {
	case SnapshotDetailText:
		// Just text, already set

	case SnapshotDetailStyled:
		snap.Segments = s.segments()

	case SnapshotDetailFull:
		snap.Cells = s.cells()
		snap.Nodes = s.snapshotNodes()
	}

	return snap
}

// segments groups content into runs of the same style.
func (s *String) segments() []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var chars []byte

	for i, st := range s.States() {
		fg, bg := stateHex(st)
		attrs := stateAttrs(st)

		if current == nil || current.Fg != fg || current.Bg != bg || current.Attributes != attrs {
			if current != nil && len(chars) > 0 {
				current.Text = string(chars)
				segments = append(segments, *current)
			}
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attributes: attrs}
			chars = nil
		}
		chars = append(chars, s.text[i])
	}

	if current != nil && len(chars) > 0 {
		current.Text = string(chars)
		segments = append(segments, *current)
	}
	return segments
}

func (s *String) cells() []SnapshotCell {
	states := s.States()
	cells := make([]SnapshotCell, 0, len(states))
	for i, st := range states {
		fg, bg := stateHex(st)
		cells = append(cells, SnapshotCell{
			Char:       string(s.text[i]),
			Fg:         fg,
			Bg:         bg,
			Attributes: stateAttrs(st),
			Owner:      s.markup[i],
			Width:      byteWidth(s.text[i]),
		})
	}
	return cells
}

func (s *String) snapshotNodes() []SnapshotNode {
	nodes := make([]SnapshotNode, 0, len(s.nodes))
	for _, nd := range s.nodes {
		nodes = append(nodes, SnapshotNode{
			Type:   string(nd.Type),
			Kind:   nd.Kind.String(),
			Open:   nd.Open,
			Close:  nd.Close,
			Parent: nd.Parent,
			Start:  nd.Start,
		})
	}
	return nodes
}

// stateHex returns the explicit colors of a state as hex strings.
// Channels without a concrete color are empty.
func stateHex(st ColorState) (fg, bg string) {
	r := st.rendition()
	if r.Fg.IsSet() {
		fg = colorToHex(resolveColor(r.Fg, r.On.Has(AttrHilite), &Palette, DefaultForeground))
	}
	if r.Bg.IsSet() {
		bg = colorToHex(resolveColor(r.Bg, false, &Palette, DefaultBackground))
	}
	return fg, bg
}

func colorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func stateAttrs(st ColorState) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:      st.On.Has(AttrHilite),
		Underline: st.On.Has(AttrUnderscore),
		Blink:     st.On.Has(AttrBlink),
		Reverse:   st.On.Has(AttrInverse),
	}
}
