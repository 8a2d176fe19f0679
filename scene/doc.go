// Package scene is the immutable input model for the frame builder: the
// parsed drawing's header, tables, block definitions and entities.
//
// The parser that fills these structures is an external collaborator. The
// renderer only reads a Scene; it never mutates one, so a single Scene can be
// rendered concurrently by independent render calls.
//
// Entities form a closed tagged union. Every concrete entity type embeds
// Common and implements Entity; the unexported marker method keeps the set
// closed so the frame builder's type switch can cover every kind.
//
// Field conventions follow the DXF group codes the parser reads, with two
// exceptions chosen so zero values are useful: a zero ColorIndex and a zero
// Lineweight both mean "by layer".
package scene
