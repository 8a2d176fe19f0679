// Package text measures text for the frame builder.
//
// The renderer does not draw glyphs. It needs the size of a text block to
// compute bounds and pick regions, and it needs plain content with the
// drawing's control codes removed. A Layouter turns a Request (content,
// style, height, reference width) into a Layout of lines and extents.
//
// Two layouters are provided:
//
//   - Shaper measures runs with the HarfBuzz shaper from go-text/typesetting
//     using a TrueType font, Go Regular by default.
//   - FixedWidth estimates widths from terminal cell widths and a constant
//     character aspect ratio.
//
// Both are safe for concurrent use.
package text
