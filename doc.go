// Package decorated parses, edits and renders decorated text: plain bytes
// carrying nested color regions, HTML tags and legacy escape sequences, in
// the encoding used by MUSH servers.
//
// This package is useful for:
//   - Rendering server text for clients with different color support
//   - Cutting, splicing and reordering text without breaking its markup
//   - Converting markup back into evaluator source
//   - Testing and previewing decorated output (snapshots, screenshots, tcell)
//
// # Quick Start
//
// Parse encoded text and render it for a 16-color terminal:
//
//	s := decorated.Parse("\x02c+red\x03Hi\x02c/\x03")
//	fmt.Println(s.Text()) // "Hi"
//	out, _ := s.Render(decorated.Capability16)
//	fmt.Printf("%q\n", out) // "\x1b[31;1mHi\x1b[0m"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [String]: content bytes, the node owning each byte, and the node table
//   - [Node]: one markup region, linked to its parent by index
//   - [ColorState]: the attributes and colors a color region applies
//   - [Color]: a foreground or background specifier
//
// # Encoding
//
// A tag is TagStart, a type byte, a body and TagEnd. Type 'c' is a color
// region, 'p' an HTML tag; other types are caller-defined namespaces. A body
// starting with '/' closes a region. Legacy sequences (ESC [ ... m) are kept
// as standalone nodes of type 'o'.
//
//	"\x02ch\x03bold \x02cr\x03and red\x02c/\x03\x02c/\x03"
//
// Parse never fails. Unmatched closers, unterminated tags and regions left
// open are repaired and reported to an [AnomalyProvider]:
//
//	s := decorated.Parse(src, decorated.WithAnomalyProvider(
//	    decorated.LogAnomalies(log.Default()),
//	))
//
// # Color Grammar
//
// Color region bodies use single letters (xrgybmcw foreground, XRGYBMCW
// background, fhiu attributes on, FHIU off, n reset, d/D default) and
// extended forms (+name, #RRGGBB, <R G B>, 0xNN, decimal xterm indices,
// with / or ! selecting the background). See [ParseColorSpec].
//
// Colors are reduced for limited displays with [Nearest16] and
// [Nearest256]; [NearestLab] uses perceptual distance instead.
//
// # Editing
//
// [String.Insert], [String.Replace] and [String.Delete] splice content and
// markup together. Inserted text nests inside the regions shared by its
// neighbours, so it picks up their decoration. [String.Reverse] and
// [String.Shuffle] permute content while every byte keeps its owner.
//
// Content is bounded by MaxLen (default [DefaultMaxLen]):
//
//	s := decorated.Parse(src, decorated.WithMaxLen(4096))
//	if err := s.Insert(0, other); errors.Is(err, decorated.ErrTruncated) {
//	    // applied, but other was cut
//	}
//
// # Serializers
//
//   - [String.Extract]: a range in encoded form, with its regions reopened
//   - [String.Render] and [Render]: output for a [Capability]
//   - [Transition]: the codes between two color states
//   - [String.Decompose] and [Compose]: evaluator source and back
//
// # Providers
//
// Optional behavior is supplied through interfaces. The default is a no-op:
//
//   - [AnomalyProvider]: notified of malformed markup while parsing
//
// # Profiles
//
// Render settings can be loaded from TOML or YAML with [LoadProfile]:
//
//	capability = "256"
//	max_len = 8192
//	highlight_style = "monokai"
//
// # Snapshots
//
// Capture a String as JSON-friendly data:
//
//	snap := s.Snapshot(decorated.SnapshotDetailStyled)
//	data, _ := json.Marshal(snap)
//
// Or render it as an image, or onto a tcell screen:
//
//	img := s.Screenshot()
//	decorated.Draw(screen, 0, 0, s)
//
// # Highlighting
//
// [Highlight] and [HighlightFile] turn source code into color regions with a
// chroma lexer and style.
//
// # Thread Safety
//
// A String is owned by one caller and is not safe for concurrent mutation.
// The color tables are built once on first use and are safe to share.
package decorated
