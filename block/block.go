// Package block defines the in-memory document model: an ordered forest of
// typed nodes, each carrying a JSON attribute bag and, for container kinds,
// ordered children.
package block

import "github.com/google/uuid"

// ID is a process-local block identifier. IDs are assigned at creation,
// stable for the node's lifetime, and never reused; uniqueness holds only
// within a single tree instance (repeated decodes produce fresh ids).
type ID string

// NewID returns a fresh block id.
func NewID() ID {
	return ID(uuid.NewString())
}

// Block is one typed node of a document tree.
type Block struct {
	ID       ID
	Kind     Kind
	WireName string // exact wire identifier; authoritative for KindUnknown
	Content  string // block-specific primary text; empty for structural kinds
	Attrs    Attrs
	Children []*Block
}

// New creates an empty block of a known kind with a fresh id and the kind's
// canonical wire name.
func New(kind Kind) *Block {
	return &Block{
		ID:       NewID(),
		Kind:     kind,
		WireName: kind.WireName(),
		Attrs:    Attrs{},
	}
}

// NewParagraph creates a paragraph block with the given content.
func NewParagraph(content string) *Block {
	b := New(KindParagraph)
	b.Content = content
	return b
}

// NewHeading creates a heading block at the given level.
func NewHeading(content string, level int) *Block {
	b := New(KindHeading)
	b.Content = content
	b.Attrs["level"] = Int(level)
	return b
}

// NewUnknown creates a block preserving an unrecognized wire identifier and
// its raw body, the only way such content round-trips.
func NewUnknown(wireName, content string) *Block {
	return &Block{
		ID:       NewID(),
		Kind:     KindUnknown,
		WireName: wireName,
		Content:  content,
		Attrs:    Attrs{},
	}
}

// Clone returns a deep copy of the block with fresh ids throughout.
func (b *Block) Clone() *Block {
	out := &Block{
		ID:       NewID(),
		Kind:     b.Kind,
		WireName: b.WireName,
		Content:  b.Content,
		Attrs:    b.Attrs.Clone(),
	}
	if len(b.Children) > 0 {
		out.Children = make([]*Block, len(b.Children))
		for i, c := range b.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Equal reports structural equality: same kind, wire name, content,
// attributes, and child structure in order. IDs are ignored — two decodes
// of the same text are Equal despite fresh ids.
func (b *Block) Equal(o *Block) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Kind != o.Kind || b.WireName != o.WireName || b.Content != o.Content {
		return false
	}
	if !b.Attrs.Equal(o.Attrs) {
		return false
	}
	if len(b.Children) != len(o.Children) {
		return false
	}
	for i := range b.Children {
		if !b.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// EqualTrees reports structural equality of two block sequences.
func EqualTrees(a, b []*Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
