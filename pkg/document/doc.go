// Package document is the in-memory vector page the engraver draws into.
//
// A [Document] has a declared width and height and an ordered list of
// drawables. Paint order is append order. Drawables are rectangles, stroked
// lines, filled glyph paths and groups of those. Both documents and groups
// implement [Appender], which is the only capability layout code needs.
//
// The document is format-neutral: package sink serializes it to SVG, PNG,
// PDF or JSON.
//
//	doc := document.New(500, 200)
//	doc.Append(&document.Rect{Width: 500, Height: 200, Fill: document.White})
//	doc.Append(&document.Line{X1: 0, Y1: 10, X2: 500, Y2: 10,
//	    Stroke: document.Black, StrokeWidth: 1.5})
package document
