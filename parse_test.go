package decorated

import (
	"slices"
	"testing"
)

// anomalyRecorder collects reported anomalies.
type anomalyRecorder struct {
	kinds []Anomaly
	codes []string
}

func (r *anomalyRecorder) Report(kind Anomaly, offset int, code string) {
	r.kinds = append(r.kinds, kind)
	r.codes = append(r.codes, code)
}

func owners(s *String) []int {
	out := make([]int, s.Len())
	for i := range out {
		out[i] = s.Owner(i)
	}
	return out
}

func TestParse_Plain(t *testing.T) {
	s := Parse("hello")

	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
	if s.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", s.NodeCount())
	}
	if s.HasMarkup() {
		t.Error("HasMarkup() = true, want false")
	}
	if s.Owner(0) != NoNode {
		t.Errorf("Owner(0) = %d, want NoNode", s.Owner(0))
	}
	if s.Source() != "hello" {
		t.Errorf("Source() = %q, want %q", s.Source(), "hello")
	}
}

func TestParse_ColorRegion(t *testing.T) {
	s := Parse("\x02c+red\x03Hi\x02c/\x03")

	if s.Text() != "Hi" {
		t.Errorf("Text() = %q, want %q", s.Text(), "Hi")
	}
	if s.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", s.NodeCount())
	}
	want := Node{Type: TypeColor, Kind: Ranged, Open: "+red", Close: "/", Parent: NoNode, Start: 0}
	if s.Node(0) != want {
		t.Errorf("Node(0) = %+v, want %+v", s.Node(0), want)
	}
	if got := owners(s); !slices.Equal(got, []int{0, 0}) {
		t.Errorf("owners = %v, want [0 0]", got)
	}
}

func TestParse_Owners(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		text     string
		expected []int
	}{
		{"nested", "\x02ch\x03a\x02cr\x03b\x02c/\x03c\x02c/\x03", "abc", []int{0, 1, 0}},
		{"close all", "\x02ch\x03\x02cr\x03a\x02c/a\x03b", "ab", []int{1, NoNode}},
		{"html", "\x02pb\x03bold\x02p/b\x03 x", "bold x", []int{0, 0, 0, 0, NoNode, NoNode}},
		{"escape", "a\x1b[31mb", "ab", []int{NoNode, 0}},
		{"escape run", "\x1b[1m\x1b[31mxy", "xy", []int{0, NoNode}},
		{"unmatched closer", "a\x02p/b\x03c", "ac", []int{NoNode, 0}},
		{"open at end", "\x02pb\x03abc", "abc", []int{0, 0, 0}},
	}

	for _, tt := range tests {
		s := Parse(tt.src)
		if s.Text() != tt.text {
			t.Errorf("%s: Text() = %q, want %q", tt.name, s.Text(), tt.text)
		}
		if got := owners(s); !slices.Equal(got, tt.expected) {
			t.Errorf("%s: owners = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestParse_NestedParent(t *testing.T) {
	s := Parse("\x02ch\x03a\x02cr\x03b\x02c/\x03\x02c/\x03")

	if s.Node(1).Parent != 0 {
		t.Errorf("Node(1).Parent = %d, want 0", s.Node(1).Parent)
	}
}

func TestParse_HTMLCloseMatchesName(t *testing.T) {
	s := Parse("\x02pa href=\"x\"\x03link\x02p/A\x03")

	if s.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", s.NodeCount())
	}
	nd := s.Node(0)
	if nd.Kind != Ranged || nd.Close != "/A" {
		t.Errorf("Node(0) = %+v, want ranged with close %q", nd, "/A")
	}
}

func TestParse_UnmatchedCloser(t *testing.T) {
	rec := &anomalyRecorder{}
	s := Parse("a\x02p/b\x03c", WithAnomalyProvider(rec))

	nd := s.Node(0)
	if nd.Kind != Standalone || nd.Open != "/b" || nd.Close != "/b" || nd.Start != 1 {
		t.Errorf("Node(0) = %+v, want standalone /b at 1 closing itself", nd)
	}
	if !slices.Contains(rec.kinds, AnomalyUnmatchedClose) {
		t.Errorf("anomalies = %v, want unmatched close", rec.kinds)
	}
}

func TestParse_UnmatchedColorClose(t *testing.T) {
	rec := &anomalyRecorder{}
	s := Parse("a\x02c/\x03b", WithAnomalyProvider(rec))

	if s.Text() != "ab" || s.NodeCount() != 0 {
		t.Errorf("Parse = %q with %d nodes, want %q with 0", s.Text(), s.NodeCount(), "ab")
	}
	if !slices.Equal(rec.kinds, []Anomaly{AnomalyUnmatchedClose}) {
		t.Errorf("anomalies = %v, want [unmatched close]", rec.kinds)
	}
}

func TestParse_ForcedStandalone(t *testing.T) {
	rec := &anomalyRecorder{}
	s := Parse("\x02cr\x03\x02pb\x03x\x02c/\x03y", WithAnomalyProvider(rec))

	nd := s.Node(1)
	if nd.Kind != Standalone || nd.Close != "" {
		t.Errorf("Node(1) = %+v, want standalone without close", nd)
	}
	if got := owners(s); !slices.Equal(got, []int{1, NoNode}) {
		t.Errorf("owners = %v, want [1 -1]", got)
	}
	if !slices.Contains(rec.kinds, AnomalyForcedStandalone) {
		t.Errorf("anomalies = %v, want forced standalone", rec.kinds)
	}
}

func TestParse_PendingStandaloneTrails(t *testing.T) {
	s := Parse("\x02c+red\x03Hi\x1b[1m\x02c/\x03 there")

	nd := s.Node(1)
	if nd.Kind != Trailing || nd.Parent != 0 || nd.Start != 1 {
		t.Errorf("Node(1) = %+v, want trailing at 1 inside 0", nd)
	}
	if s.Owner(1) != 1 || s.Owner(2) != NoNode {
		t.Errorf("owners = %v, want escape on 'i' only", owners(s))
	}
}

func TestParse_PendingStandaloneCarries(t *testing.T) {
	s := Parse("x\x02cr\x03\x1b[1m\x02c/\x03y")

	nd := s.Node(1)
	if nd.Kind != Standalone || nd.Parent != NoNode || nd.Start != 1 {
		t.Errorf("Node(1) = %+v, want standalone at 1 without parent", nd)
	}
	if got := owners(s); !slices.Equal(got, []int{NoNode, 1}) {
		t.Errorf("owners = %v, want [-1 1]", got)
	}
}

func TestParse_EscapeRunCoalesces(t *testing.T) {
	s := Parse("\x1b[1m\x1b[31mx")

	if s.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", s.NodeCount())
	}
	nd := s.Node(0)
	if nd.Type != TypeEscape || nd.Kind != Standalone || nd.Open != "[1m\x1b[31" {
		t.Errorf("Node(0) = %+v, want one escape node", nd)
	}
}

func TestParse_Trailing(t *testing.T) {
	s := Parse("ab\x02p/b\x03")

	nd := s.Node(0)
	if nd.Kind != Trailing || nd.Start != 1 || nd.Parent != NoNode {
		t.Errorf("Node(0) = %+v, want trailing at 1", nd)
	}
	if s.Owner(1) != 0 {
		t.Errorf("Owner(1) = %d, want 0", s.Owner(1))
	}
}

func TestParse_TrailingChainKeepsOrder(t *testing.T) {
	s := Parse("\x02cr\x03ab\x02c/\x03\x1b[0m\x02p/x\x03")

	// escape (1) is the leaf, chained to the closer (2), chained to the color region (0)
	if s.Owner(1) != 1 {
		t.Errorf("Owner(1) = %d, want 1", s.Owner(1))
	}
	if s.Node(1).Parent != 2 || s.Node(2).Parent != 0 {
		t.Errorf("parents = %d, %d, want 2, 0", s.Node(1).Parent, s.Node(2).Parent)
	}
	if got, _ := s.Extract(0, s.Len()); got != "\x02cr\x03ab\x1b[0m\x02p/x\x03\x02c/\x03" {
		t.Errorf("Extract = %q", got)
	}
	if s.Node(1).Kind != Trailing || s.Node(2).Kind != Trailing {
		t.Errorf("kinds = %v, %v, want trailing", s.Node(1).Kind, s.Node(2).Kind)
	}
}

func TestParse_Anomalies(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		text     string
		expected []Anomaly
	}{
		{"unterminated tag", "ab\x02cr", "ab", []Anomaly{AnomalyUnterminatedTag}},
		{"empty tag", "a\x02\x03b", "ab", []Anomaly{AnomalyEmptyTag}},
		{"tag without body", "a\x02c\x03b", "ab", []Anomaly{AnomalyEmptyTag}},
		{"unterminated escape", "ab\x1b[31", "ab", []Anomaly{AnomalyUnterminatedTag}},
	}

	for _, tt := range tests {
		rec := &anomalyRecorder{}
		s := Parse(tt.src, WithAnomalyProvider(rec))
		if s.Text() != tt.text {
			t.Errorf("%s: Text() = %q, want %q", tt.name, s.Text(), tt.text)
		}
		if !slices.Equal(rec.kinds, tt.expected) {
			t.Errorf("%s: anomalies = %v, want %v", tt.name, rec.kinds, tt.expected)
		}
	}
}

func TestParse_Overflow(t *testing.T) {
	rec := &anomalyRecorder{}
	s := Parse("abcdef", WithMaxLen(3), WithAnomalyProvider(rec))

	if s.Text() != "abc" {
		t.Errorf("Text() = %q, want %q", s.Text(), "abc")
	}
	if !slices.Equal(rec.kinds, []Anomaly{AnomalyOverflow}) {
		t.Errorf("anomalies = %v, want [overflow]", rec.kinds)
	}
}

func TestParse_InternsCodes(t *testing.T) {
	s := Parse("\x02cr\x03a\x02c/\x03\x02cr\x03b\x02c/\x03")

	if s.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", s.NodeCount())
	}
	if len(s.tags) != 2 {
		t.Errorf("interned %d codes, want 2 (%q and %q)", len(s.tags), "r", "/")
	}
}

func TestTagMatches(t *testing.T) {
	tests := []struct {
		open     string
		name     string
		expected bool
	}{
		{"b", "b", true},
		{"B", "b", true},
		{"a href=x", "a", true},
		{"abbr", "a", false},
		{"a", "", false},
		{"a", "abbr", false},
	}

	for _, tt := range tests {
		if got := tagMatches(tt.open, tt.name); got != tt.expected {
			t.Errorf("tagMatches(%q, %q) = %v, want %v", tt.open, tt.name, got, tt.expected)
		}
	}
}
