package decorated

// Attr is a bitmask of style attributes carried by a ColorState.
type Attr uint8

const (
	AttrHilite Attr = 1 << iota
	AttrInverse
	AttrBlink
	AttrUnderscore
)

// AttrAll has every style attribute set.
const AttrAll = AttrHilite | AttrInverse | AttrBlink | AttrUnderscore

// Has returns true if every attribute in flag is set.
func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}

// attrInfo ties an attribute to its grammar letters and its SGR parameter.
type attrInfo struct {
	attr Attr
	on   byte
	off  byte
	sgr  int
}

// attrLetterOrder is the order attributes are written by Letters.
var attrLetterOrder = [...]attrInfo{
	{AttrBlink, 'f', 'F', 5},
	{AttrHilite, 'h', 'H', 1},
	{AttrInverse, 'i', 'I', 7},
	{AttrUnderscore, 'u', 'U', 4},
}

// attrSGROrder is the order attributes are written in escape sequences.
var attrSGROrder = [...]attrInfo{
	{AttrHilite, 'h', 'H', 1},
	{AttrInverse, 'i', 'I', 7},
	{AttrBlink, 'f', 'F', 5},
	{AttrUnderscore, 'u', 'U', 4},
}

// attrForLetter returns the attribute toggled by a grammar letter and whether
// the letter turns it on.
func attrForLetter(c byte) (Attr, bool, bool) {
	for _, info := range attrLetterOrder {
		switch c {
		case info.on:
			return info.attr, true, true
		case info.off:
			return info.attr, false, true
		}
	}
	return 0, false, false
}
