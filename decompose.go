package decorated

import (
	"fmt"
	"strconv"
	"strings"
)

// bel is the terminal bell.
const bel = 0x07

// escapedChars are written with a leading backslash by Decompose.
const escapedChars = `()[]{}$^%,;\`

// spaceRunMin is the shortest run of spaces written as [space(N)].
const spaceRunMin = 5

// beepRunMax is the longest run of bells written as one [beep(N)].
const beepRunMax = 5

// Decompose writes the String as evaluator source that rebuilds it:
//
//	[ansi(<letters>,<text>)]     a run of text with one color state
//	[tag(name,attr="v")]         an HTML tag
//	[endtag(name)]               its closer
//	%b %r %t                     space, newline, tab
//	[space(N)] [beep(N)]         runs of spaces and bells
//
// The characters ()[]{}$^%,;\ are escaped with a backslash. Compose turns
// the result back into encoded text.
func (s *String) Decompose() string {
	var d decomposer
	scanStates(s.encodeAll(), d.text, d.tag)
	d.finish()
	return d.out.String()
}

type decomposer struct {
	out     strings.Builder
	pending []byte
	state   ColorState // state of pending
	shown   ColorState // state of the open [ansi(
	open    bool
	tags    []string
}

func (d *decomposer) text(c byte, st ColorState) {
	if st != d.state {
		d.flush()
		d.state = st
	}
	d.pending = append(d.pending, c)
}

func (d *decomposer) tag(typ byte, body string) {
	if typ != TypeHTML {
		return
	}
	d.flush()
	if body[0] != '/' {
		name, attrs := splitTag(body)
		d.out.WriteString("[tag(")
		d.out.WriteString(name)
		for _, a := range attrs {
			d.out.WriteByte(',')
			d.out.WriteString(a)
		}
		d.out.WriteString(")]")
		d.tags = append(d.tags, name)
		return
	}
	name := body[1:]
	for k := len(d.tags) - 1; k >= 0; k-- {
		if !strings.EqualFold(d.tags[k], name) {
			continue
		}
		for len(d.tags) > k {
			d.endTag()
		}
		return
	}
}

func (d *decomposer) endTag() {
	last := len(d.tags) - 1
	d.out.WriteString("[endtag(")
	d.out.WriteString(d.tags[last])
	d.out.WriteString(")]")
	d.tags = d.tags[:last]
}

func (d *decomposer) flush() {
	if len(d.pending) == 0 {
		return
	}
	if d.state != d.shown {
		if d.open {
			d.out.WriteString(")]")
			d.open = false
		}
		if !d.state.IsNull() {
			d.out.WriteString("[ansi(")
			d.out.WriteString(d.state.Letters())
			d.out.WriteByte(',')
			d.open = true
		}
		d.shown = d.state
	}
	escapeText(&d.out, d.pending)
	d.pending = d.pending[:0]
}

func (d *decomposer) finish() {
	d.flush()
	if d.open {
		d.out.WriteString(")]")
		d.open = false
	}
	for len(d.tags) > 0 {
		d.endTag()
	}
}

// splitTag splits an HTML tag body into its name and attributes in
// name="value" form. Quoted values may contain spaces.
func splitTag(body string) (string, []string) {
	name, rest, _ := strings.Cut(body, " ")
	var attrs []string
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			return name, attrs
		}
		key, after, hasValue := strings.Cut(rest, "=")
		if sp := strings.IndexByte(key, ' '); sp >= 0 || !hasValue {
			if sp < 0 {
				sp = len(rest)
			}
			attrs = append(attrs, rest[:sp])
			rest = rest[sp:]
			continue
		}
		var value string
		if strings.HasPrefix(after, `"`) {
			value, rest, _ = strings.Cut(after[1:], `"`)
		} else {
			value, rest, _ = strings.Cut(after, " ")
		}
		attrs = append(attrs, key+`="`+value+`"`)
	}
}

// escapeText writes one run of plain text. Leading and trailing spaces are
// written as %b so they survive evaluation; inner runs alternate.
func escapeText(sb *strings.Builder, text []byte) {
	spaces := 0
	leading := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			spaces++
			continue
		}
		if spaces > 0 {
			writeSpaces(sb, spaces, leading, false)
			spaces = 0
		}
		leading = false
		switch c {
		case '\n':
			sb.WriteString("%r")
		case '\t':
			sb.WriteString("%t")
		case bel:
			n := 1
			for n < beepRunMax && i+1 < len(text) && text[i+1] == bel {
				i++
				n++
			}
			fmt.Fprintf(sb, "[beep(%d)]", n)
		default:
			if strings.IndexByte(escapedChars, c) >= 0 {
				sb.WriteByte('\\')
			}
			sb.WriteByte(c)
		}
	}
	if spaces > 0 {
		writeSpaces(sb, spaces, leading, true)
	}
}

func writeSpaces(sb *strings.Builder, n int, leading, trailing bool) {
	if n >= spaceRunMin {
		fmt.Fprintf(sb, "[space(%d)]", n)
		return
	}
	if trailing {
		n--
	}
	if leading && n > 0 {
		n--
		sb.WriteString("%b")
	}
	for n > 0 {
		sb.WriteByte(' ')
		if n--; n > 0 {
			n--
			sb.WriteString("%b")
		}
	}
	if trailing {
		sb.WriteString("%b")
	}
}

// Compose turns Decompose output back into encoded text. Input that
// Decompose could not have written fails with ErrMalformedSource.
func Compose(decomposed string) (string, error) {
	var sb strings.Builder
	depth := 0
	src := decomposed
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\\' || c == '%':
			if i+1 >= len(src) {
				return "", fmt.Errorf("%w: dangling %q at %d", ErrMalformedSource, c, i)
			}
			next := src[i+1]
			if c == '\\' {
				sb.WriteByte(next)
			} else {
				switch next {
				case 'b':
					sb.WriteByte(' ')
				case 'r':
					sb.WriteByte('\n')
				case 't':
					sb.WriteByte('\t')
				default:
					return "", fmt.Errorf("%w: unknown substitution %%%c at %d", ErrMalformedSource, next, i)
				}
			}
			i += 2

		case c == ')' && depth > 0 && i+1 < len(src) && src[i+1] == ']':
			sb.WriteByte(TagStart)
			sb.WriteByte(TypeColor)
			sb.WriteByte('/')
			sb.WriteByte(TagEnd)
			depth--
			i += 2

		case c == '[':
			n, opened, err := composeCall(&sb, src, i)
			if err != nil {
				return "", err
			}
			depth += opened
			i += n

		case strings.IndexByte(escapedChars, c) >= 0:
			return "", fmt.Errorf("%w: unescaped %q at %d", ErrMalformedSource, c, i)

		default:
			sb.WriteByte(c)
			i++
		}
	}
	if depth > 0 {
		return "", fmt.Errorf("%w: %d unclosed ansi()", ErrMalformedSource, depth)
	}
	return sb.String(), nil
}

// composeCall writes the function call starting at src[i] and returns the
// number of bytes consumed and the number of color regions it left open.
func composeCall(sb *strings.Builder, src string, i int) (int, int, error) {
	paren := strings.IndexByte(src[i:], '(')
	if paren < 0 {
		return 0, 0, fmt.Errorf("%w: bad call at %d", ErrMalformedSource, i)
	}
	fn := src[i+1 : i+paren]
	argStart := i + paren + 1

	if fn == "ansi" {
		comma := strings.IndexByte(src[argStart:], ',')
		if comma < 0 {
			return 0, 0, fmt.Errorf("%w: ansi() without text at %d", ErrMalformedSource, i)
		}
		letters := src[argStart : argStart+comma]
		if _, err := ParseColorSpec(letters); err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		sb.WriteByte(TagStart)
		sb.WriteByte(TypeColor)
		sb.WriteString(letters)
		sb.WriteByte(TagEnd)
		return paren + 1 + comma + 1, 1, nil
	}

	args, n, err := callArgs(src, argStart)
	if err != nil {
		return 0, 0, err
	}
	consumed := paren + 1 + n
	switch fn {
	case "space", "beep":
		if len(args) != 1 {
			return 0, 0, fmt.Errorf("%w: %s() takes one argument", ErrMalformedSource, fn)
		}
		count, err := strconv.Atoi(args[0])
		if err != nil || count < 1 {
			return 0, 0, fmt.Errorf("%w: bad count %q", ErrMalformedSource, args[0])
		}
		ch := " "
		if fn == "beep" {
			ch = string(rune(bel))
		}
		sb.WriteString(strings.Repeat(ch, count))
	case "tag":
		if len(args) == 0 || args[0] == "" {
			return 0, 0, fmt.Errorf("%w: tag() without a name", ErrMalformedSource)
		}
		sb.WriteByte(TagStart)
		sb.WriteByte(TypeHTML)
		sb.WriteString(strings.Join(args, " "))
		sb.WriteByte(TagEnd)
	case "endtag":
		if len(args) != 1 || args[0] == "" {
			return 0, 0, fmt.Errorf("%w: endtag() takes one name", ErrMalformedSource)
		}
		sb.WriteByte(TagStart)
		sb.WriteByte(TypeHTML)
		sb.WriteByte('/')
		sb.WriteString(args[0])
		sb.WriteByte(TagEnd)
	default:
		return 0, 0, fmt.Errorf("%w: unknown function %q", ErrMalformedSource, fn)
	}
	return consumed, 0, nil
}

// callArgs splits comma separated arguments up to the closing ")]".
// Commas inside double quotes do not split. It returns the arguments and
// the bytes consumed from start, including ")]".
func callArgs(src string, start int) ([]string, int, error) {
	var args []string
	quoted := false
	from := start
	for j := start; j < len(src); j++ {
		switch c := src[j]; {
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == ',':
			args = append(args, src[from:j])
			from = j + 1
		case c == ')' && j+1 < len(src) && src[j+1] == ']':
			args = append(args, src[from:j])
			return args, j + 2 - start, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: unterminated call at %d", ErrMalformedSource, start)
}
