// Package engrave lays out music notation on a fixed-size page.
//
// # Overview
//
// Layout happens in two passes. First, measures are pushed onto a [Staff],
// which wraps them into rows greedily: a measure joins the current row if
// the row stays narrower than the page, otherwise it starts a new row.
// There is no lookahead and no rebalancing.
//
// Second, a [Renderer] draws the staff into a [document.Document]. Rows are
// stacked a fixed [Layout.RowHeight] apart. Inside a row, the leftover width
// (page width minus measures minus both document paddings) is split evenly
// between the row's measures, and each measure spends its share on internal
// spacing when it renders.
//
// # Glyph Primitives
//
// Measures draw themselves with a small set of primitives whose geometry is
// fixed by the [Config]:
//
//   - [Clef]: the treble clef, reserving bounding-box width + padding
//   - [NoteHead]: a head (and dot) at vertical offset ry × (index − 1)
//   - [Stem]: one line spanning a chord, extended 6 note radii past it
//   - [Accidental]: sharp, flat or natural before a head
//
// # Usage
//
//	cfg, err := engrave.Default()
//	if err != nil {
//	    return err // a broken font is fatal
//	}
//	var staff engrave.Staff
//	for _, m := range measures {
//	    staff.Push(cfg, m)
//	}
//	doc := engrave.NewRenderer(cfg).Render(&staff)
//
// Package measure provides a ready-made [Measure] built from chords.
//
// [document.Document]: github.com/matzehuels/engrave/pkg/document.Document
package engrave
