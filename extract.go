package decorated

import (
	"fmt"
	"math"
)

// Extract serializes length content bytes starting at start back into
// encoded form, with every region that covers the range opened before it and
// closed after it. Ranges running past the end are clamped.
//
// Output is bounded by MaxLen; if it does not fit, ErrCapacity is returned
// and nothing is emitted.
func (s *String) Extract(start, length int) (string, error) {
	if start < 0 || length < 0 || start > len(s.text) {
		return "", fmt.Errorf("%w: extract %d+%d of %d", ErrPosition, start, length, len(s.text))
	}
	if start+length > len(s.text) {
		length = len(s.text) - start
	}
	return s.extract(start, length, s.maxLen)
}

func (s *String) extract(start, length, limit int) (string, error) {
	b := newBoundedBuffer(limit)
	if len(s.text) == 0 {
		for _, nd := range s.nodes {
			if nd.Kind != Ranged {
				b.writeCode(nd.Type, nd.Open)
				b.writeCode(nd.Type, nd.Close)
			}
		}
		return b.result()
	}

	last := NoNode
	end := start + length
	for pos := start; pos < end; pos++ {
		if owner := s.markup[pos]; owner != last {
			s.writeTransition(b, last, owner, pos)
			last = owner
		}
		b.writeByte(s.text[pos])
	}
	s.writeTransition(b, last, NoNode, end)
	return b.result()
}

// Encode serializes the whole String back into encoded form.
func (s *String) Encode() (string, error) {
	return s.Extract(0, len(s.text))
}

// encodeAll serializes the whole String without an output bound.
func (s *String) encodeAll() string {
	out, _ := s.extract(0, len(s.text), math.MaxInt)
	return out
}

// writeTransition closes the regions of from up to the common ancestor with
// to, then opens the regions of to from that ancestor down.
func (s *String) writeTransition(b *boundedBuffer, from, to, pos int) {
	lca := s.commonAncestor(from, to)
	for n := from; n != lca; n = s.parent(n) {
		s.writeClose(b, n)
	}

	var path []int
	for n := to; n != lca; n = s.parent(n) {
		path = append(path, n)
	}
	for k := len(path) - 1; k >= 0; k-- {
		s.writeOpen(b, path[k], pos)
	}
}

func (s *String) writeOpen(b *boundedBuffer, n, pos int) {
	nd := &s.nodes[n]
	switch nd.Kind {
	case Ranged:
		b.writeCode(nd.Type, nd.Open)
	case Standalone:
		if nd.Start == pos {
			b.writeCode(nd.Type, nd.Open)
		}
	}
}

func (s *String) writeClose(b *boundedBuffer, n int) {
	nd := &s.nodes[n]
	switch nd.Kind {
	case Ranged, Standalone:
		b.writeCode(nd.Type, nd.Close)
	case Trailing:
		b.writeCode(nd.Type, nd.Open)
		b.writeCode(nd.Type, nd.Close)
	}
}
