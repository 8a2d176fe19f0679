// Package style resolves the effective appearance of an entity: color and
// opacity, lineweight, linetype and its dash scaling, material channels, and
// the visual-style preset that decides which parts of surfaces are drawn.
//
// Resolution is pure with respect to the scene. Mutable state is limited to
// MaterialCache, which belongs to one render call or one long-lived caller
// and is invalidated when the materials table changes identity.
package style
