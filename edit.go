package decorated

import (
	"fmt"
	"slices"
)

// Delete removes count content bytes starting at start. Counts running past
// the end are clamped. Standalone decoration attached after the removed range
// moves with its character.
func (s *String) Delete(start, count int) error {
	if start < 0 || count < 0 || start > len(s.text) {
		return fmt.Errorf("%w: delete %d+%d of %d", ErrPosition, start, count, len(s.text))
	}
	if start+count > len(s.text) {
		count = len(s.text) - start
	}
	if count == 0 {
		return nil
	}
	s.deleteRange(start, count)
	return nil
}

func (s *String) deleteRange(start, count int) {
	s.text = slices.Delete(s.text, start, start+count)
	s.markup = slices.Delete(s.markup, start, start+count)
	for i := range s.nodes {
		if s.nodes[i].Kind != Ranged && s.nodes[i].Start >= start+count {
			s.nodes[i].Start -= count
		}
	}
}

// Insert inserts other at offset at. See Replace.
func (s *String) Insert(at int, other *String) error {
	return s.Replace(at, 0, other)
}

// Replace replaces count content bytes at offset at with the content and
// decoration of other.
//
// Regions of other that have no parent are nested inside the deepest region
// shared by the characters on both sides of the edit, so inserted text picks
// up the surrounding decoration. Text without any markup takes the owner of
// the character before it.
//
// The result is cut to MaxLen. If other had to be cut, the edit is still
// applied and ErrTruncated is returned; if at is already at the limit,
// ErrCapacity is returned and nothing changes.
func (s *String) Replace(at, count int, other *String) error {
	if at < 0 || count < 0 {
		return fmt.Errorf("%w: replace %d+%d of %d", ErrPosition, at, count, len(s.text))
	}
	if other == s {
		other = s.Clone()
	}
	oldLen := len(s.text)
	if at > oldLen {
		at, count = oldLen, 0
	}
	if at+count > oldLen {
		count = oldLen - at
	}

	if other.Len() == 0 {
		if count > 0 {
			s.deleteRange(at, count)
		}
		if other.hasStandalone() {
			s.attachDecoration(at, other)
		}
		return nil
	}
	if at >= s.maxLen {
		return fmt.Errorf("%w: insert at %d with limit %d", ErrCapacity, at, s.maxLen)
	}

	srcLen := other.Len()
	tail := at + count
	tailLen := oldLen - tail
	truncated := false
	if at+srcLen > s.maxLen {
		srcLen = s.maxLen - at
		truncated = true
	}
	if at+srcLen+tailLen > s.maxLen {
		tailLen = s.maxLen - at - srcLen
		truncated = true
	}

	var before, after int = NoNode, NoNode
	if count > 0 {
		before, after = s.markup[at], s.markup[at+count-1]
	} else {
		if at > 0 {
			before = s.markup[at-1]
		}
		if at < oldLen {
			after = s.markup[at]
		}
	}
	base := s.commonAncestor(before, after)

	extend := NoNode
	if count > 0 {
		extend = s.markup[at+count-1]
	} else if at > 0 && at < oldLen {
		extend = s.markup[at-1]
	}

	delta := len(s.nodes)
	shift := srcLen - count
	for i := range s.nodes {
		if s.nodes[i].Kind != Ranged && s.nodes[i].Start >= tail {
			s.nodes[i].Start += shift
		}
	}
	for _, nd := range other.nodes {
		parent := base
		if nd.Parent != NoNode {
			parent = nd.Parent + delta
		}
		s.nodes = append(s.nodes, Node{
			Type:   nd.Type,
			Kind:   nd.Kind,
			Open:   s.intern(nd.Open),
			Close:  s.intern(nd.Close),
			Parent: parent,
			Start:  nd.Start + at,
		})
	}

	newLen := at + srcLen + tailLen
	text := make([]byte, newLen)
	markup := make([]int, newLen)
	copy(text, s.text[:at])
	copy(markup, s.markup[:at])
	copy(text[at:], other.text[:srcLen])
	for j := 0; j < srcLen; j++ {
		switch {
		case other.HasMarkup():
			if m := other.markup[j]; m != NoNode {
				markup[at+j] = m + delta
			} else {
				markup[at+j] = base
			}
		case j < count:
			markup[at+j] = s.markup[at+j]
		default:
			markup[at+j] = extend
		}
	}
	copy(text[at+srcLen:], s.text[tail:tail+tailLen])
	copy(markup[at+srcLen:], s.markup[tail:tail+tailLen])
	s.text, s.markup = text, markup

	if truncated {
		return fmt.Errorf("%w: result limited to %d bytes", ErrTruncated, s.maxLen)
	}
	return nil
}

// attachDecoration copies the standalone nodes of a contentless String onto
// the character at offset at, or after the last character when at is the end.
func (s *String) attachDecoration(at int, other *String) {
	var copied []int
	for _, nd := range other.nodes {
		if nd.Kind == Ranged {
			continue
		}
		copied = append(copied, s.addNode(nd.Type, Standalone, nd.Open, nd.Close, NoNode))
	}
	n := len(s.text)
	switch {
	case n == 0:
		return
	case at < n:
		parent := s.markup[at]
		for _, idx := range copied {
			s.nodes[idx].Parent = parent
			s.nodes[idx].Start = at
			parent = idx
		}
		s.markup[at] = copied[len(copied)-1]
	default:
		s.trail(copied)
	}
}

// Reverse reverses the content in place. Each byte keeps its owner.
func (s *String) Reverse() {
	for i, j := 0, len(s.text)-1; i < j; i, j = i+1, j-1 {
		s.text[i], s.text[j] = s.text[j], s.text[i]
		s.markup[i], s.markup[j] = s.markup[j], s.markup[i]
	}
}

// Shuffle swaps every content byte with one at a uniformly random offset.
// Each byte keeps its owner.
func (s *String) Shuffle() {
	n := len(s.text)
	for i := 0; i < n; i++ {
		j := s.intn(n)
		s.text[i], s.text[j] = s.text[j], s.text[i]
		s.markup[i], s.markup[j] = s.markup[j], s.markup[i]
	}
}
