package decorated

import (
	"slices"
	"strings"
)

// Parse builds a String from encoded decorated text.
//
// Tags are written TagStart, a type byte, a body and TagEnd. For color tags
// (TypeColor) a body opens a region, "/" closes the innermost color region
// and "/a" closes everything. For other types a body opens a region and
// "/name" closes the nearest open region of that type whose body starts with
// name. Legacy escape sequences (ESC ... m) are kept as standalone nodes.
//
// Parse never fails: malformed markup is repaired into a well-formed
// structure and reported to the AnomalyProvider.
func Parse(source string, opts ...Option) *String {
	s := newString(opts...)
	s.source = strings.Clone(source)

	cur := NoNode
	for i := 0; i < len(source); {
		switch source[i] {
		case TagStart:
			var body string
			if end := strings.IndexByte(source[i+1:], TagEnd); end >= 0 {
				body = source[i+1 : i+1+end]
				i += end + 2
			} else {
				body = source[i+1:]
				i = len(source)
				s.anomaly.Report(AnomalyUnterminatedTag, len(s.text), body)
			}
			if len(body) < 2 {
				s.anomaly.Report(AnomalyEmptyTag, len(s.text), body)
				continue
			}
			cur = s.lexTag(cur, body[0], body[1:])

		case Esc:
			end := escapeEnd(source, i)
			code := source[i+1 : end]
			if end == len(source) {
				s.anomaly.Report(AnomalyUnterminatedTag, len(s.text), code)
			}
			i = end + 1
			cur = s.addNode(TypeEscape, Standalone, code, "", cur)

		default:
			if len(s.text) >= s.maxLen {
				s.anomaly.Report(AnomalyOverflow, len(s.text), "")
				i = len(source)
				continue
			}
			s.text = append(s.text, source[i])
			s.markup = append(s.markup, cur)
			for cur != NoNode && s.nodes[cur].Kind != Ranged {
				cur = s.parent(cur)
			}
			i++
		}
	}

	for n := cur; n != NoNode; n = s.parent(n) {
		if s.nodes[n].Type != TypeColor && s.nodes[n].Kind == Ranged {
			s.forceStandalone(n)
		}
	}
	s.retargetTrailing()
	return s
}

// escapeEnd returns the offset of the 'm' ending the escape run starting at i,
// or len(source) for an unterminated run. Escapes that directly follow one
// another form a single run.
func escapeEnd(source string, i int) int {
	for j := i + 1; j < len(source); j++ {
		if source[j] == 'm' && (j+1 >= len(source) || source[j+1] != Esc) {
			return j
		}
	}
	return len(source)
}

// lexTag applies one tag and returns the new current node.
func (s *String) lexTag(cur int, typ byte, body string) int {
	if typ == TypeColor {
		if body[0] != '/' {
			return s.addNode(typ, Ranged, body, "/", cur)
		}
		if len(body) > 1 && body[1] == 'a' {
			root := NoNode
			for n := cur; n != NoNode; n = s.parent(n) {
				root = n
			}
			return s.settlePending(cur, root, NoNode)
		}
		n := cur
		for n != NoNode && s.nodes[n].Type != TypeColor {
			if s.nodes[n].Kind == Ranged {
				s.forceStandalone(n)
			}
			n = s.parent(n)
		}
		if n == NoNode {
			s.anomaly.Report(AnomalyUnmatchedClose, len(s.text), body)
			return cur
		}
		return s.settlePending(cur, n, s.parent(n))
	}

	if body[0] != '/' {
		return s.addNode(typ, Ranged, body, "", cur)
	}

	name := body[1:]
	for n := cur; n != NoNode; n = s.parent(n) {
		nd := &s.nodes[n]
		if nd.Type != typ || nd.Kind != Ranged || !tagMatches(nd.Open, name) {
			continue
		}
		for m := cur; m != n; m = s.parent(m) {
			if s.nodes[m].Type != TypeColor && s.nodes[m].Kind == Ranged {
				s.forceStandalone(m)
			}
		}
		nd.Close = s.intern(body)
		return s.settlePending(cur, n, nd.Parent)
	}

	s.anomaly.Report(AnomalyUnmatchedClose, len(s.text), body)
	return s.addNode(typ, Standalone, body, body, cur)
}

// settlePending handles standalone nodes between cur and closed that still
// wait for a character when closed ends. If the last character lies inside
// closed they trail it, so they stay inside the region. Otherwise they are
// carried over to the next character beneath next. It returns the new
// current node.
func (s *String) settlePending(cur, closed, next int) int {
	n := len(s.text)
	var pending []int
	for m := cur; m != NoNode; m = s.parent(m) {
		if s.nodes[m].Kind != Ranged && s.nodes[m].Start == n {
			pending = append(pending, m)
		}
		if m == closed {
			break
		}
	}
	if len(pending) == 0 {
		return next
	}
	slices.Reverse(pending)
	if n > 0 && s.within(s.markup[n-1], closed) {
		s.trail(pending)
		return next
	}
	parent := next
	for _, m := range pending {
		s.nodes[m].Parent = parent
		parent = m
	}
	return parent
}

// within reports whether closed is n or one of its ancestors.
func (s *String) within(n, closed int) bool {
	for ; n != NoNode; n = s.parent(n) {
		if n == closed {
			return true
		}
	}
	return false
}

// tagMatches reports whether an open code names the tag: a case-insensitive
// prefix followed by a space or the end of the code.
func tagMatches(open, name string) bool {
	if name == "" || len(open) < len(name) || !strings.EqualFold(open[:len(name)], name) {
		return false
	}
	return len(open) == len(name) || open[len(name)] == ' '
}

// forceStandalone closes a region where it stands: its opener is emitted once
// at its start and it never emits a closer.
func (s *String) forceStandalone(n int) {
	nd := &s.nodes[n]
	nd.Kind = Standalone
	nd.Close = ""
	s.anomaly.Report(AnomalyForcedStandalone, nd.Start, nd.Open)
}

// retargetTrailing moves non-color nodes attached at the end of the content
// onto the last character, where they are emitted after it. They are chained
// in source order beneath the character's previous owner.
// Without content there is nothing to close after, so standalone nodes keep
// only their opener.
func (s *String) retargetTrailing() {
	n := len(s.text)
	if n == 0 {
		for i := range s.nodes {
			if s.nodes[i].Kind != Ranged {
				s.nodes[i].Close = ""
			}
		}
		return
	}
	var trailing []int
	for i := range s.nodes {
		if s.nodes[i].Start == n && s.nodes[i].Type != TypeColor {
			trailing = append(trailing, i)
		}
	}
	if len(trailing) > 0 {
		s.trail(trailing)
	}
}

// trail attaches nodes, given in source order, after the last character.
// The first of them becomes the character's owner and they are emitted in
// that order when the character's regions close. Standalone nodes are
// emitted once, so they lose their closer.
func (s *String) trail(nodes []int) {
	last := len(s.text) - 1
	parent := s.markup[last]
	for k := len(nodes) - 1; k >= 0; k-- {
		nd := &s.nodes[nodes[k]]
		if nd.Kind != Ranged {
			nd.Close = ""
		}
		nd.Kind = Trailing
		nd.Parent = parent
		nd.Start = last
		parent = nodes[k]
	}
	s.markup[last] = nodes[0]
}
