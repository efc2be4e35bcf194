package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/engrave/pkg/document"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title  string
	indent string
}

// WithTitle embeds a <title> element for viewers and screen readers.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithIndent nests group children by the given string per level.
func WithIndent(s string) SVGOption { return func(r *svgRenderer) { r.indent = s } }

// RenderSVG serializes doc as a standalone SVG file. Elements appear in the
// document's paint order; groups become <g> elements carrying their class.
func RenderSVG(doc *document.Document, opts ...SVGOption) []byte {
	r := svgRenderer{indent: "  "}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(doc.Width), num(doc.Height), num(doc.Width), num(doc.Height))
	if r.title != "" {
		fmt.Fprintf(&buf, "%s<title>%s</title>\n", r.indent, html.EscapeString(r.title))
	}
	r.nodes(&buf, doc.Children, 1)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) nodes(buf *bytes.Buffer, nodes []document.Node, depth int) {
	pad := strings.Repeat(r.indent, depth)
	for _, n := range nodes {
		switch n := n.(type) {
		case *document.Group:
			if n.Class != "" {
				fmt.Fprintf(buf, "%s<g class=\"%s\">\n", pad, html.EscapeString(n.Class))
			} else {
				fmt.Fprintf(buf, "%s<g>\n", pad)
			}
			r.nodes(buf, n.Children, depth+1)
			fmt.Fprintf(buf, "%s</g>\n", pad)
		case *document.Rect:
			fmt.Fprintf(buf, "%s<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\"/>\n",
				pad, num(n.X), num(n.Y), num(n.Width), num(n.Height), n.Fill)
		case *document.Line:
			fmt.Fprintf(buf, "%s<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
				pad, num(n.X1), num(n.Y1), num(n.X2), num(n.Y2), n.Stroke, num(n.StrokeWidth))
		case *document.Path:
			if len(n.Segments) == 0 {
				continue
			}
			fmt.Fprintf(buf, "%s<path d=\"%s\" fill=\"%s\"/>\n", pad, PathData(n.Segments), n.Fill)
		}
	}
}

// PathData formats segments as an SVG path "d" attribute.
func PathData(segs []document.Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case document.MoveTo:
			b.WriteByte('M')
		case document.LineTo:
			b.WriteByte('L')
		case document.QuadTo:
			b.WriteByte('Q')
		case document.CubeTo:
			b.WriteByte('C')
		case document.Close:
			b.WriteByte('Z')
			continue
		}
		for j := 0; j < s.Op.NumPoints(); j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(num(s.Points[j].X))
			b.WriteByte(' ')
			b.WriteString(num(s.Points[j].Y))
		}
	}
	return b.String()
}

// num prints v with at most two decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
