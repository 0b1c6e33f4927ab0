package decorated

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestString_Clone(t *testing.T) {
	s := Parse("\x02cr\x03abc\x02c/\x03")
	c := s.Clone()

	if err := c.Insert(0, Parse("x")); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	c.Reverse()

	if s.Text() != "abc" || s.Owner(0) != 0 {
		t.Errorf("original changed: %q owner %d", s.Text(), s.Owner(0))
	}
	if c.Text() != "cbax" {
		t.Errorf("clone Text() = %q, want %q", c.Text(), "cbax")
	}
}

func TestString_Release(t *testing.T) {
	s := Parse("\x02cr\x03abc\x02c/\x03")

	s.Release()

	if s.Len() != 0 || s.NodeCount() != 0 || s.Source() != "" {
		t.Errorf("after Release: Len %d, NodeCount %d, Source %q", s.Len(), s.NodeCount(), s.Source())
	}
	if err := s.Insert(0, Parse("\x02cg\x03x\x02c/\x03")); err != nil {
		t.Fatalf("Insert after Release error: %v", err)
	}
	if got := mustEncode(t, s); got != "\x02cg\x03x\x02c/\x03" {
		t.Errorf("Encode = %q", got)
	}
}

func TestString_NodesIsCopy(t *testing.T) {
	s := Parse("\x02cr\x03a\x02c/\x03")

	nodes := s.Nodes()
	nodes[0].Open = "g"

	if s.Node(0).Open != "r" {
		t.Errorf("Node(0).Open = %q, want %q", s.Node(0).Open, "r")
	}
}

func TestString_Options(t *testing.T) {
	if got := Parse("").MaxLen(); got != DefaultMaxLen {
		t.Errorf("MaxLen() = %d, want %d", got, DefaultMaxLen)
	}
	if got := Parse("", WithMaxLen(0)).MaxLen(); got != DefaultMaxLen {
		t.Errorf("WithMaxLen(0) MaxLen() = %d, want %d", got, DefaultMaxLen)
	}
	if got := Parse("", WithMaxLen(10)).MaxLen(); got != 10 {
		t.Errorf("WithMaxLen(10) MaxLen() = %d, want 10", got)
	}
}

func TestString_Owner(t *testing.T) {
	s := Parse("\x02cr\x03a\x02c/\x03")

	if s.Owner(-1) != NoNode || s.Owner(5) != NoNode {
		t.Error("Owner out of range should be NoNode")
	}
	if s.String() != "a" {
		t.Errorf("String() = %q, want %q", s.String(), "a")
	}
}

func TestNodeKind_String(t *testing.T) {
	tests := []struct {
		kind     NodeKind
		expected string
	}{
		{Ranged, "ranged"},
		{Standalone, "standalone"},
		{Trailing, "trailing"},
		{NodeKind(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestLogAnomalies(t *testing.T) {
	var buf bytes.Buffer
	Parse("a\x02p/b\x03c", WithAnomalyProvider(LogAnomalies(log.New(&buf, "", 0))))

	want := "decorated: unmatched close at 1: \"/b\"\n"
	if buf.String() != want {
		t.Errorf("log = %q, want %q", buf.String(), want)
	}
}

func TestAnomalyFunc(t *testing.T) {
	var got []string
	Parse("ab\x02cr", WithAnomalyProvider(AnomalyFunc(func(kind Anomaly, offset int, code string) {
		got = append(got, kind.String())
	})))

	if strings.Join(got, ",") != "unterminated tag" {
		t.Errorf("anomalies = %v, want [unterminated tag]", got)
	}
	if Anomaly(99).String() != "anomaly(99)" {
		t.Errorf("Anomaly(99).String() = %q", Anomaly(99).String())
	}
}
