// Package glyph turns font codepoints into drawable outlines.
//
// The engraver consumes exactly two operations from a font: the outline of a
// codepoint at a size, and the bounding-box width of that outline. [Face]
// captures the first; [Outline.Width] the second. [Font] implements Face on
// top of golang.org/x/image/font/sfnt.
//
// Coordinates follow the document convention: y grows downward and the
// origin is the glyph's baseline start.
package glyph
