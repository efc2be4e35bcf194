package engrave

import (
	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/glyph"
)

// boxFace draws every rune as a square half the requested size wide, sitting
// on the baseline. It records requests so tests can assert on them.
type boxFace struct {
	requests []request
}

type request struct {
	r    rune
	size float64
}

func (f *boxFace) Outline(r rune, size float64) glyph.Outline {
	f.requests = append(f.requests, request{r, size})
	w := size / 2
	return glyph.Outline{
		Rune: r,
		Size: size,
		Segments: []document.Segment{
			{Op: document.MoveTo, Points: [3]document.Point{{X: 0, Y: -w}}},
			{Op: document.LineTo, Points: [3]document.Point{{X: w, Y: -w}}},
			{Op: document.LineTo, Points: [3]document.Point{{X: w, Y: 0}}},
			{Op: document.LineTo, Points: [3]document.Point{{X: 0, Y: 0}}},
			{Op: document.Close},
		},
		Bounds: glyph.Rect{MinX: 0, MinY: -w, MaxX: w, MaxY: 0},
	}
}

func testConfig() (*Config, *boxFace) {
	face := &boxFace{}
	return NewConfig(face, DefaultLayout()), face
}

// origin returns where a boxFace outline was placed: its bottom-left corner.
func origin(p *document.Path) document.Point {
	return p.Segments[3].Points[0]
}

// fixedMeasure is a measure of constant width that records how it was
// rendered.
type fixedMeasure struct {
	width float64
	calls []renderCall
}

type renderCall struct {
	x, y, extra float64
	index       int
}

func (m *fixedMeasure) Width() float64 { return m.width }

func (m *fixedMeasure) Render(x, y, extra float64, index int, cfg *Config, dst document.Appender) float64 {
	m.calls = append(m.calls, renderCall{x, y, extra, index})
	cfg.DrawLine(dst, x, y, x+m.width+extra, y)
	return x + m.width + extra
}

func measures(widths ...float64) []*fixedMeasure {
	out := make([]*fixedMeasure, len(widths))
	for i, w := range widths {
		out[i] = &fixedMeasure{width: w}
	}
	return out
}

func push(cfg *Config, ms []*fixedMeasure) *Staff {
	var s Staff
	for _, m := range ms {
		s.Push(cfg, m)
	}
	return &s
}

func rowWidths(s *Staff) [][]float64 {
	var out [][]float64
	for _, r := range s.Rows() {
		var ws []float64
		for _, m := range r.Measures() {
			ws = append(ws, m.Width())
		}
		out = append(out, ws)
	}
	return out
}
