package decorated

import "errors"

// Sentinel errors returned by parsing, editing and serialization.
// Callers should test for them with errors.Is; most are wrapped with context.
var (
	// ErrInvalidColor is returned when a color specification cannot be parsed.
	// No partial ColorState is ever returned alongside it.
	ErrInvalidColor = errors.New("invalid color specification")

	// ErrCapacity is returned when output or an edit would exceed the maximum length.
	// Nothing is written when it is returned.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrTruncated is returned when an edit was applied but the incoming
	// material had to be cut to fit the maximum length.
	ErrTruncated = errors.New("content truncated")

	// ErrPosition is returned when an offset or count is out of range.
	ErrPosition = errors.New("position out of range")

	// ErrMalformedSource is returned by Compose when its input is not in decompose form.
	ErrMalformedSource = errors.New("malformed decomposed source")
)
