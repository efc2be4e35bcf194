package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/engrave/pkg/document"
)

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes doc. The image is the document size times the scale,
// rounded up to whole pixels.
func RenderPNG(doc *document.Document, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, fmt.Errorf("invalid scale %v", r.scale)
	}

	w := int(math.Ceil(doc.Width * r.scale))
	h := int(math.Ceil(doc.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	doc.Walk(func(n document.Node) { draw(dc, n) })

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// draw paints one node. Groups carry no paint of their own; Walk visits
// their children separately.
func draw(dc *gg.Context, n document.Node) {
	switch n := n.(type) {
	case *document.Rect:
		dc.SetHexColor(n.Fill)
		dc.DrawRectangle(n.X, n.Y, n.Width, n.Height)
		dc.Fill()
	case *document.Line:
		dc.SetHexColor(n.Stroke)
		dc.SetLineWidth(n.StrokeWidth)
		dc.DrawLine(n.X1, n.Y1, n.X2, n.Y2)
		dc.Stroke()
	case *document.Path:
		if len(n.Segments) == 0 {
			return
		}
		dc.SetHexColor(n.Fill)
		for _, s := range n.Segments {
			p := s.Points
			switch s.Op {
			case document.MoveTo:
				dc.NewSubPath()
				dc.MoveTo(p[0].X, p[0].Y)
			case document.LineTo:
				dc.LineTo(p[0].X, p[0].Y)
			case document.QuadTo:
				dc.QuadraticTo(p[0].X, p[0].Y, p[1].X, p[1].Y)
			case document.CubeTo:
				dc.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
			case document.Close:
				dc.ClosePath()
			}
		}
		dc.Fill()
	}
}
