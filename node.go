package decorated

// Encoded markup sentinels.
const (
	TagStart byte = 0x02
	TagEnd   byte = 0x03
	Esc      byte = 0x1b
)

// Node types. Any other byte is accepted as a caller-defined tag namespace.
const (
	TypeColor  byte = 'c'
	TypeHTML   byte = 'p'
	TypeEscape byte = 'o'
)

// NoNode marks an unowned character or a node without a parent.
const NoNode = -1

// NodeKind describes how a node decorates content.
type NodeKind uint8

const (
	// Ranged nodes own a range of characters and emit Open before it and Close after it.
	Ranged NodeKind = iota
	// Standalone nodes emit Open once, right before the character at Start, and
	// Close, if any, right after it.
	Standalone
	// Trailing nodes emit Open then Close right after the character they are attached to.
	Trailing
)

func (k NodeKind) String() string {
	switch k {
	case Ranged:
		return "ranged"
	case Standalone:
		return "standalone"
	case Trailing:
		return "trailing"
	}
	return "unknown"
}

// Node is one markup region of a String.
type Node struct {
	Type   byte
	Kind   NodeKind
	Open   string
	Close  string
	Parent int
	// Start is the content offset the node was attached at.
	Start int
}
