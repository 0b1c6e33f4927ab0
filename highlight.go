package decorated

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

// DefaultHighlightStyle is the chroma style used when none is named.
const DefaultHighlightStyle = "monokai"

// Highlight tokenizes source code and returns it as encoded text with one
// color region per token. lexerName picks a chroma lexer; when it is empty or
// unknown the lexer is detected from the code. Tokens in the style's plain
// text color are left undecorated.
func Highlight(code, lexerName, styleName string) (string, error) {
	lexer := highlightLexer(lexerName, code)
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", lexer.Config().Name, err)
	}

	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style := styles.Get(styleName)
	base := style.Get(chroma.Text).Colour

	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		text := stripSentinels(tok.Value)
		spec := tokenSpec(style.Get(tok.Type), base)
		if spec == "" {
			sb.WriteString(text)
			continue
		}
		sb.WriteByte(TagStart)
		sb.WriteByte(TypeColor)
		sb.WriteString(spec)
		sb.WriteByte(TagEnd)
		sb.WriteString(text)
		sb.WriteString(string([]byte{TagStart, TypeColor, '/', TagEnd}))
	}
	return sb.String(), nil
}

// HighlightFile is like Highlight but picks the language from the file name
// and content.
func HighlightFile(filename string, code []byte, styleName string) (string, error) {
	lang := enry.GetLanguage(filepath.Base(filename), code)
	return Highlight(string(code), lang, styleName)
}

func highlightLexer(name, code string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	return lexers.Fallback
}

// tokenSpec converts a style entry to color grammar. Bold becomes hilite.
func tokenSpec(entry chroma.StyleEntry, base chroma.Colour) string {
	var spec string
	if entry.Bold == chroma.Yes {
		spec += "h"
	}
	if entry.Underline == chroma.Yes {
		spec += "u"
	}
	if entry.Colour.IsSet() && entry.Colour != base {
		c := entry.Colour
		spec += hexString(uint32(c.Red())<<16 | uint32(c.Green())<<8 | uint32(c.Blue()))
	}
	return spec
}

// stripSentinels removes bytes that would be read as markup.
func stripSentinels(s string) string {
	return strings.Map(func(r rune) rune {
		if r == rune(TagStart) || r == rune(TagEnd) || r == rune(Esc) {
			return -1
		}
		return r
	}, s)
}
