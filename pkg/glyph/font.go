package glyph

import (
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/errors"
)

// Font is a [Face] backed by a parsed TrueType or OpenType font.
//
// The parsed font is read-only. Every call allocates its own sfnt.Buffer, so
// a Font may be shared freely.
type Font struct {
	f *sfnt.Font
}

// Parse parses TrueType or OpenType font data.
// A malformed font yields an error with code [errors.ErrCodeFont].
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeFont, "empty font data")
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFont, err, "parse font")
	}
	return &Font{f: f}, nil
}

// Name returns the full font name, or "" when the font has none.
func (f *Font) Name() string {
	var buf sfnt.Buffer
	name, err := f.f.Name(&buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// Covers reports whether the font maps r to a real glyph rather than .notdef.
func (f *Font) Covers(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.f.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Load returns the outline of r at size pixels per em.
// Runes the font does not cover load the .notdef glyph.
func (f *Font) Load(r rune, size float64) (Outline, error) {
	var buf sfnt.Buffer
	idx, err := f.f.GlyphIndex(&buf, r)
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeFont, err, "glyph index for %U", r)
	}

	segs, err := f.f.LoadGlyph(&buf, idx, toFixed(size), nil)
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeFont, err, "load glyph %U", r)
	}

	return Outline{
		Rune:     r,
		Size:     size,
		Segments: convertSegments(segs),
		Bounds:   convertRect(segs.Bounds()),
	}, nil
}

// Outline implements [Face]. Load failures produce an empty outline; use
// [Font.Check] at construction time to rule them out.
func (f *Font) Outline(r rune, size float64) Outline {
	o, err := f.Load(r, size)
	if err != nil {
		return Outline{Rune: r, Size: size}
	}
	return o
}

// Check loads every rune once and returns the first failure.
func (f *Font) Check(runes ...rune) error {
	for _, r := range runes {
		if _, err := f.Load(r, 16); err != nil {
			return err
		}
	}
	return nil
}

// Missing returns the runes the font does not cover, in input order.
func (f *Font) Missing(runes ...rune) []rune {
	var out []rune
	for _, r := range runes {
		if !f.Covers(r) {
			out = append(out, r)
		}
	}
	return out
}

// String implements fmt.Stringer.
func (f *Font) String() string {
	if name := f.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("font(%d glyphs)", f.f.NumGlyphs())
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func convertPoint(p fixed.Point26_6) document.Point {
	return document.Point{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

func convertRect(r fixed.Rectangle26_6) Rect {
	return Rect{
		MinX: fromFixed(r.Min.X), MinY: fromFixed(r.Min.Y),
		MaxX: fromFixed(r.Max.X), MaxY: fromFixed(r.Max.Y),
	}
}

// convertSegments maps sfnt segments to document segments. sfnt leaves
// contours implicitly closed; an explicit Close is emitted before every new
// contour and at the end.
func convertSegments(segs sfnt.Segments) []document.Segment {
	out := make([]document.Segment, 0, len(segs)+4)
	open := false
	for _, s := range segs {
		var seg document.Segment
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out = append(out, document.Segment{Op: document.Close})
			}
			open = true
			seg.Op = document.MoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = document.LineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = document.QuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = document.CubeTo
		default:
			continue
		}
		for i := 0; i < seg.Op.NumPoints(); i++ {
			seg.Points[i] = convertPoint(s.Args[i])
		}
		out = append(out, seg)
	}
	if open {
		out = append(out, document.Segment{Op: document.Close})
	}
	return out
}
