package decorated

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshot_Text(t *testing.T) {
	s := Parse("\x02cr\x03Red\x02c/\x03 Normal")

	snap := s.Snapshot(SnapshotDetailText)

	if snap.Text != "Red Normal" {
		t.Errorf("Text = %q, want %q", snap.Text, "Red Normal")
	}
	if snap.Length != 10 || snap.Width != 10 {
		t.Errorf("Length, Width = %d, %d, want 10, 10", snap.Length, snap.Width)
	}

	// Text mode should not have segments or cells
	if snap.Segments != nil {
		t.Error("Text mode should not have segments")
	}
	if snap.Cells != nil {
		t.Error("Text mode should not have cells")
	}
}

func TestSnapshot_Styled(t *testing.T) {
	s := Parse("\x02cr\x03Red\x02c/\x03 \x02chu\x03Bold\x02c/\x03")

	snap := s.Snapshot(SnapshotDetailStyled)

	if len(snap.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(snap.Segments))
	}

	red := snap.Segments[0]
	if red.Text != "Red" || red.Fg != "#800000" || red.Bg != "" {
		t.Errorf("Segments[0] = %+v, want Red in #800000", red)
	}
	if plain := snap.Segments[1]; plain.Text != " " || plain.Fg != "" {
		t.Errorf("Segments[1] = %+v, want unstyled space", plain)
	}
	bold := snap.Segments[2]
	if !bold.Attributes.Bold || !bold.Attributes.Underline || bold.Attributes.Blink {
		t.Errorf("Segments[2].Attributes = %+v, want bold and underline", bold.Attributes)
	}
}

func TestSnapshot_HiliteBrightens(t *testing.T) {
	snap := Parse("\x02chr\x03x\x02c/\x03").Snapshot(SnapshotDetailStyled)

	if len(snap.Segments) != 1 || snap.Segments[0].Fg != "#ff0000" {
		t.Errorf("Segments = %+v, want bright red", snap.Segments)
	}
}

func TestSnapshot_Full(t *testing.T) {
	s := Parse("\x02cr\x03ab\x02c/\x03c")

	snap := s.Snapshot(SnapshotDetailFull)

	if len(snap.Cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(snap.Cells))
	}
	if snap.Cells[0].Owner != 0 || snap.Cells[2].Owner != NoNode {
		t.Errorf("owners = %d, %d, want 0, -1", snap.Cells[0].Owner, snap.Cells[2].Owner)
	}
	if snap.Cells[1].Char != "b" || snap.Cells[1].Width != 1 {
		t.Errorf("Cells[1] = %+v", snap.Cells[1])
	}

	if len(snap.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(snap.Nodes))
	}
	want := SnapshotNode{Type: "c", Kind: "ranged", Open: "r", Close: "/", Parent: NoNode, Start: 0}
	if snap.Nodes[0] != want {
		t.Errorf("Nodes[0] = %+v, want %+v", snap.Nodes[0], want)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	snap := Parse("\x02cr\x03Red\x02c/\x03").Snapshot(SnapshotDetailStyled)

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"text":"Red"`) || !strings.Contains(out, `"fg":"#800000"`) {
		t.Errorf("json = %s", out)
	}
}
