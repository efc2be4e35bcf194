// Package render turns engraved documents into files.
//
// The [sink] subpackage serializes a [document.Document] to SVG, PNG, PDF or
// JSON. SVG and JSON are written directly; PNG is rasterized in-process with
// fogleman/gg; PDF goes through the external rsvg-convert tool via [ToPDF]:
//
//	svg := sink.RenderSVG(doc)
//	png, err := sink.RenderPNG(doc, sink.WithScale(2))
//	pdf, err := render.ToPDF(svg)
//
// PDF export requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [sink]: github.com/matzehuels/engrave/pkg/render/sink
// [document.Document]: github.com/matzehuels/engrave/pkg/document.Document
package render
