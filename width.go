package decorated

import "github.com/unilibs/uniwidth"

// byteWidth returns the display width of a content byte read as Latin-1:
// 1 for printable characters, 0 for control characters.
func byteWidth(b byte) int {
	return uniwidth.RuneWidth(rune(b))
}

// Width returns the display width of the content.
func (s *String) Width() int {
	w := 0
	for _, b := range s.text {
		w += byteWidth(b)
	}
	return w
}

// StringWidth returns the display width of UTF-8 encoded text with its markup removed.
func StringWidth(src string) int {
	return uniwidth.StringWidth(RemoveMarkup(src))
}
