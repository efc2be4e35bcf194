// Package sink provides output format renderers for engraved documents.
//
// # Overview
//
// A "sink" transforms a [document.Document] into a final output format:
//
//   - SVG: [RenderSVG], written directly with one element per drawable
//   - PNG: [RenderPNG], rasterized with fogleman/gg at [WithScale]
//   - PDF: [RenderPDF], SVG converted by rsvg-convert
//   - JSON: [RenderJSON], the document tree for inspection and tooling
//
// Sinks never change geometry. Coordinates are printed with at most two
// decimals in SVG and full precision in JSON.
//
// # Adding New Formats
//
//  1. Create a renderer function: func RenderFoo(doc *document.Document, opts ...FooOption) ([]byte, error)
//  2. Walk doc.Children (or use doc.Walk for a flat paint-order pass)
//  3. Register the format in pkg/pipeline
//
// [document.Document]: github.com/matzehuels/engrave/pkg/document.Document
package sink
