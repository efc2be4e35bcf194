package glyph

import "github.com/matzehuels/engrave/pkg/document"

// Rect is an axis-aligned bounding box in document units, y growing down.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Outline is the drawable shape of one codepoint at one size, positioned
// relative to the glyph origin (left edge of the advance, on the baseline).
//
// Outlines are immutable once built and may be placed any number of times
// with [Outline.Path]; chords rely on this to draw several heads from one
// outline.
type Outline struct {
	Rune     rune
	Size     float64
	Segments []document.Segment
	Bounds   Rect
}

// Width returns the bounding-box width of the outline.
func (o Outline) Width() float64 { return o.Bounds.Width() }

// Empty reports whether the outline has no drawable segments.
func (o Outline) Empty() bool { return len(o.Segments) == 0 }

// Path returns the outline as a filled path with its origin at (x, y).
func (o Outline) Path(x, y float64) *document.Path {
	return &document.Path{
		Segments: document.Translate(o.Segments, x, y),
		Fill:     document.Black,
	}
}

// Face produces glyph outlines. Implementations must be safe to call
// repeatedly and must not be mutated by callers.
type Face interface {
	Outline(r rune, size float64) Outline
}
