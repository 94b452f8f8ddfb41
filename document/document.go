// Package document owns the live block tree for one editing session and
// exposes the mutation operations the editor drives.
//
// A Document is deliberately not thread-safe: it models a single editing
// session owned by one logical actor, and all operations are invoked
// sequentially. Id-addressed operations act on the top-level sequence only;
// nested containers are edited by replacing their child sequence wholesale.
package document

import (
	"github.com/teranos/blockpress/block"
	"github.com/teranos/blockpress/wire"
)

// Document is the controller state: the top-level block forest and the
// current selection.
type Document struct {
	blocks   []*block.Block
	selected block.ID // empty means no selection
}

// New creates a document with a single empty paragraph, the practical
// starting point for an editing session.
func New() *Document {
	return &Document{blocks: []*block.Block{block.NewParagraph("")}}
}

// FromBlocks creates a document over an existing block sequence. An empty
// sequence gets the placeholder paragraph.
func FromBlocks(blocks []*block.Block) *Document {
	if len(blocks) == 0 {
		return New()
	}
	return &Document{blocks: blocks}
}

// FromWire decodes wire-format text into a new document. The decoder may
// return an empty sequence for empty input; the document supplies the
// placeholder block in that case.
func FromWire(text string) *Document {
	return FromBlocks(wire.Decode(text))
}

// Blocks returns the top-level block sequence. Callers must not mutate the
// returned slice; use the controller operations.
func (d *Document) Blocks() []*block.Block {
	return d.blocks
}

// Wire serializes the current tree to wire-format text.
func (d *Document) Wire() string {
	return wire.Encode(d.blocks)
}

// Selected returns the id of the selected block, or "" when nothing is
// selected.
func (d *Document) Selected() block.ID {
	return d.selected
}

// Select sets the selection to the given top-level block. Selecting an id
// not present in the document clears the selection.
func (d *Document) Select(id block.ID) {
	if d.indexOf(id) < 0 {
		d.selected = ""
		return
	}
	d.selected = id
}

// InsertAfter inserts b immediately following the block with afterID. When
// afterID is empty or does not resolve, b is appended at the end. The new
// block always becomes the selection.
func (d *Document) InsertAfter(b *block.Block, afterID block.ID) {
	if b == nil {
		return
	}
	idx := d.indexOf(afterID)
	if idx < 0 {
		d.blocks = append(d.blocks, b)
	} else {
		d.blocks = append(d.blocks, nil)
		copy(d.blocks[idx+2:], d.blocks[idx+1:])
		d.blocks[idx+1] = b
	}
	d.selected = b.ID
}

// Remove deletes the top-level block with the given id. Removal drops
// ownership entirely; there is no undo buffer. Removing the selected block
// clears the selection. Unknown ids are ignored.
func (d *Document) Remove(id block.ID) {
	idx := d.indexOf(id)
	if idx < 0 {
		return
	}
	d.blocks = append(d.blocks[:idx], d.blocks[idx+1:]...)
	if d.selected == id {
		d.selected = ""
	}
}

// Move reorders the top-level sequence, moving the block at from to to.
// Out-of-bounds indices are ignored.
func (d *Document) Move(from, to int) {
	if from < 0 || from >= len(d.blocks) || to < 0 || to >= len(d.blocks) || from == to {
		return
	}
	b := d.blocks[from]
	d.blocks = append(d.blocks[:from], d.blocks[from+1:]...)
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[to+1:], d.blocks[to:])
	d.blocks[to] = b
}

// UpdateContent replaces the content of the matching top-level block,
// leaving children and attributes untouched.
func (d *Document) UpdateContent(id block.ID, content string) {
	if idx := d.indexOf(id); idx >= 0 {
		d.blocks[idx].Content = content
	}
}

// UpdateAttrs wholesale-replaces the attribute bag of the matching
// top-level block.
func (d *Document) UpdateAttrs(id block.ID, attrs block.Attrs) {
	if idx := d.indexOf(id); idx >= 0 {
		if attrs == nil {
			attrs = block.Attrs{}
		}
		d.blocks[idx].Attrs = attrs
	}
}

// ReplaceChildren wholesale-replaces the child sequence of the matching
// top-level container block. This is the supported way to edit inside
// nested containers; the model keeps no tree-wide id index.
func (d *Document) ReplaceChildren(id block.ID, children []*block.Block) {
	if idx := d.indexOf(id); idx >= 0 {
		d.blocks[idx].Children = children
	}
}

// Get returns the top-level block with the given id, or nil.
func (d *Document) Get(id block.ID) *block.Block {
	if idx := d.indexOf(id); idx >= 0 {
		return d.blocks[idx]
	}
	return nil
}

// Len returns the number of top-level blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// indexOf resolves an id against the top-level sequence only.
func (d *Document) indexOf(id block.ID) int {
	if id == "" {
		return -1
	}
	for i, b := range d.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
