// Package coords resolves the coordinate systems of a drawing into matrices.
//
// A Resolver produces one world matrix for model space and one matrix per
// paper-space layout. Each maps drawing coordinates into the plane of the
// basis chosen for that space: explicit UCS axes, a referenced UCS table
// entry, a named view, or a view direction. Malformed or missing axis data
// falls back to the world basis; resolution never fails.
//
// Matrices are cached by an uppercase key (layout name, handle, block record
// handle or one of the model/paper aliases). The cache is bound to the scene
// it was filled from and is cleared when a different scene is resolved.
package coords
