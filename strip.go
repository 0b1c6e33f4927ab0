package decorated

import "strings"

// RemoveMarkup returns encoded text with every tag and escape sequence removed.
func RemoveMarkup(src string) string {
	var sb strings.Builder
	sb.Grow(len(src))
	for i := 0; i < len(src); i++ {
		if n := markupLen(src, i); n > 0 {
			i += n - 1
			continue
		}
		sb.WriteByte(src[i])
	}
	return sb.String()
}

// Strlen returns the number of visible bytes in encoded text.
func Strlen(src string) int {
	n := 0
	for i := 0; i < len(src); i++ {
		if m := markupLen(src, i); m > 0 {
			i += m - 1
			continue
		}
		n++
	}
	return n
}

// PrefixLen returns the number of encoded bytes that cover the first n
// visible bytes, including the markup between them.
func PrefixLen(src string, n int) int {
	i := 0
	for i < len(src) && n > 0 {
		if m := markupLen(src, i); m > 0 {
			i += m
			continue
		}
		i++
		n--
	}
	return i
}

// HasMarkup returns true if encoded text contains a tag or an escape sequence.
func HasMarkup(src string) bool {
	return strings.IndexByte(src, TagStart) >= 0 || strings.IndexByte(src, Esc) >= 0
}

// Compare compares two encoded texts by their visible content.
func Compare(a, b string) int {
	return strings.Compare(RemoveMarkup(a), RemoveMarkup(b))
}

// markupLen returns the length of the tag or escape sequence at src[i],
// or 0 if a visible byte starts there. Unterminated markup runs to the end.
func markupLen(src string, i int) int {
	var term byte
	switch src[i] {
	case TagStart:
		term = TagEnd
	case Esc:
		term = 'm'
	default:
		return 0
	}
	if end := strings.IndexByte(src[i+1:], term); end >= 0 {
		return end + 2
	}
	return len(src) - i
}
