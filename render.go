package decorated

import (
	"html"
	"strings"
)

// Render parses src and writes it for a display with capability c.
func Render(src string, c Capability, opts ...Option) (string, error) {
	return Parse(src, opts...).Render(c)
}

// Render writes the String for a display with capability c: color regions
// and legacy escapes become the codes Transition produces, HTML tags pass
// through for CapabilityTags and CapabilityHTML and are dropped otherwise.
// Decoration still active at the end is reset.
//
// Output is bounded by MaxLen; ErrCapacity is returned when it does not fit.
func (s *String) Render(c Capability) (string, error) {
	b := newBoundedBuffer(s.maxLen)
	var baseline, last ColorState
	scanStates(s.encodeAll(),
		func(ch byte, st ColorState) {
			if st != last {
				codes, next := Transition(baseline, st, c)
				b.writeString(codes)
				baseline, last = next, st
			}
			if c == CapabilityHTML {
				b.writeString(html.EscapeString(string(ch)))
				return
			}
			b.writeByte(ch)
		},
		func(typ byte, body string) {
			switch {
			case c == CapabilityTags:
				b.writeCode(typ, body)
			case c == CapabilityHTML && typ == TypeHTML:
				b.writeString("<" + body + ">")
			}
		})
	if !baseline.rendition().IsNull() {
		codes, _ := Transition(baseline, ColorState{}, c)
		b.writeString(codes)
	}
	return b.result()
}

// States returns the effective color state of every content byte.
func (s *String) States() []ColorState {
	states := make([]ColorState, 0, len(s.text))
	scanStates(s.encodeAll(), func(_ byte, st ColorState) {
		states = append(states, st)
	}, nil)
	return states
}

// StateAt returns the effective color state of content byte i.
func (s *String) StateAt(i int) ColorState {
	if i < 0 || i >= len(s.text) {
		return ColorState{}
	}
	return s.States()[i]
}

// scanStates walks encoded text with a stack of color states and calls text
// for every content byte and tag for every non-color tag.
//
// Color tags push the merged state of their body (an unparsable body pushes
// nothing new), "/" pops and "/a" pops everything. A legacy escape applies on
// top of the current state until the next color tag.
func scanStates(src string, text func(c byte, st ColorState), tag func(typ byte, body string)) {
	stack := []ColorState{{}}
	raw := false
	for i := 0; i < len(src); {
		switch src[i] {
		case TagStart:
			end := strings.IndexByte(src[i+1:], TagEnd)
			var body string
			if end < 0 {
				body, i = src[i+1:], len(src)
			} else {
				body, i = src[i+1:i+1+end], i+end+2
			}
			if len(body) < 2 {
				continue
			}
			typ, code := body[0], body[1:]
			if typ != TypeColor {
				if tag != nil {
					tag(typ, code)
				}
				continue
			}
			if raw {
				stack = stack[:len(stack)-1]
				raw = false
			}
			switch {
			case code[0] != '/':
				inner, err := ParseColorSpec(code)
				if err != nil {
					inner = ColorState{}
				}
				stack = append(stack, Merge(stack[len(stack)-1], inner))
			case len(code) > 1 && code[1] == 'a':
				stack = stack[:1]
			case len(stack) > 1:
				stack = stack[:len(stack)-1]
			}

		case Esc:
			end := strings.IndexByte(src[i:], 'm')
			if end < 0 {
				end = len(src) - i - 1
			}
			seq := src[i : i+end+1]
			i += end + 1
			if !raw {
				top := stack[len(stack)-1]
				top.Off = 0
				stack = append(stack, top)
				raw = true
			}
			stack[len(stack)-1] = applySGR(stack[len(stack)-1], seq)

		default:
			text(src[i], stack[len(stack)-1])
			i++
		}
	}
}
