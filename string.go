package decorated

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// DefaultMaxLen is the default maximum length of content and of serialized output.
const DefaultMaxLen = 8192

// String is a line of decorated text: plain content, the node owning each
// content byte, and the node table those indices point into.
//
// A String is owned by a single caller and is not safe for concurrent mutation.
type String struct {
	text   []byte
	markup []int
	nodes  []Node
	source string

	// tags interns open and close codes; nodes hold copies, never slices of the source.
	tags map[string]string

	maxLen  int
	anomaly AnomalyProvider
	intn    func(n int) int
}

// Option configures a String.
type Option func(*String)

// WithMaxLen sets the maximum content and output length.
// Values <= 0 are replaced with DefaultMaxLen.
func WithMaxLen(n int) Option {
	if n <= 0 {
		n = DefaultMaxLen
	}
	return func(s *String) {
		s.maxLen = n
	}
}

// WithAnomalyProvider sets the handler notified of malformed markup.
func WithAnomalyProvider(p AnomalyProvider) Option {
	return func(s *String) {
		s.anomaly = p
	}
}

// WithRand sets the random source used by Shuffle. intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *String) {
		s.intn = intn
	}
}

func newString(opts ...Option) *String {
	s := &String{
		tags:    make(map[string]string),
		maxLen:  DefaultMaxLen,
		anomaly: NoopAnomaly{},
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of content bytes.
func (s *String) Len() int {
	return len(s.text)
}

// Text returns the content without markup.
func (s *String) Text() string {
	return string(s.text)
}

// String returns the content without markup.
func (s *String) String() string {
	return s.Text()
}

// Source returns the encoded text the String was parsed from.
func (s *String) Source() string {
	return s.source
}

// MaxLen returns the configured maximum length.
func (s *String) MaxLen() int {
	return s.maxLen
}

// NodeCount returns the size of the node table.
func (s *String) NodeCount() int {
	return len(s.nodes)
}

// Node returns the node at index i.
func (s *String) Node(i int) Node {
	return s.nodes[i]
}

// Nodes returns a copy of the node table.
func (s *String) Nodes() []Node {
	return slices.Clone(s.nodes)
}

// Owner returns the node owning content byte i, or NoNode.
func (s *String) Owner(i int) int {
	if i < 0 || i >= len(s.markup) {
		return NoNode
	}
	return s.markup[i]
}

// HasMarkup returns true if the String has any nodes.
func (s *String) HasMarkup() bool {
	return len(s.nodes) > 0
}

// Clone returns an independent copy.
func (s *String) Clone() *String {
	c := &String{
		text:    slices.Clone(s.text),
		markup:  slices.Clone(s.markup),
		nodes:   slices.Clone(s.nodes),
		source:  s.source,
		tags:    make(map[string]string, len(s.tags)),
		maxLen:  s.maxLen,
		anomaly: s.anomaly,
		intn:    s.intn,
	}
	for k, v := range s.tags {
		c.tags[k] = v
	}
	return c
}

// Release drops the content, the node table and the interned codes.
// The String is empty afterwards.
func (s *String) Release() {
	s.text = nil
	s.markup = nil
	s.nodes = nil
	s.source = ""
	s.tags = make(map[string]string)
}

// intern returns the shared copy of a code.
func (s *String) intern(code string) string {
	if code == "" {
		return ""
	}
	if v, ok := s.tags[code]; ok {
		return v
	}
	v := strings.Clone(code)
	s.tags[v] = v
	return v
}

// addNode appends a node and returns its index.
func (s *String) addNode(typ byte, kind NodeKind, openCode, closeCode string, parent int) int {
	s.nodes = append(s.nodes, Node{
		Type:   typ,
		Kind:   kind,
		Open:   s.intern(openCode),
		Close:  s.intern(closeCode),
		Parent: parent,
		Start:  len(s.text),
	})
	return len(s.nodes) - 1
}

func (s *String) parent(n int) int {
	return s.nodes[n].Parent
}

// commonAncestor returns the first node on b's ancestor chain that is also on a's.
func (s *String) commonAncestor(a, b int) int {
	for x := b; x != NoNode; x = s.parent(x) {
		for y := a; y != NoNode; y = s.parent(y) {
			if x == y {
				return x
			}
		}
	}
	return NoNode
}

// hasStandalone returns true if any node decorates a single attachment point.
func (s *String) hasStandalone() bool {
	for _, n := range s.nodes {
		if n.Kind != Ranged {
			return true
		}
	}
	return false
}
