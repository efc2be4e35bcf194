package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/engrave/pkg/document"
)

func emptyPage() *document.Document {
	doc := document.New(500, 200)
	doc.Append(&document.Rect{Width: 500, Height: 200, Fill: document.White})
	return doc
}

func samplePage() *document.Document {
	doc := emptyPage()
	g := &document.Group{Class: "measure"}
	g.Append(&document.Line{X1: 21.5, Y1: -6, X2: 171.25, Y2: -6, Stroke: document.Black, StrokeWidth: 1.5})
	g.Append(&document.Path{
		Segments: []document.Segment{
			{Op: document.MoveTo, Points: [3]document.Point{{X: 10, Y: 20}}},
			{Op: document.QuadTo, Points: [3]document.Point{{X: 15, Y: 10}, {X: 20, Y: 20}}},
			{Op: document.CubeTo, Points: [3]document.Point{{X: 20, Y: 25}, {X: 10, Y: 25}, {X: 10, Y: 20}}},
			{Op: document.Close},
		},
		Fill: document.Black,
	})
	doc.Append(g)
	return doc
}

func TestRenderSVGEmptyPage(t *testing.T) {
	svg := string(RenderSVG(emptyPage()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 200" width="500" height="200">`) {
		t.Errorf("unexpected header:\n%s", svg)
	}
	if got := strings.Count(svg, "<rect"); got != 1 {
		t.Errorf("rects = %d, want 1", got)
	}
	for _, tag := range []string{"<line", "<path", "<g"} {
		if strings.Contains(svg, tag) {
			t.Errorf("empty page contains %s", tag)
		}
	}
	if !strings.Contains(svg, `fill="#fff"`) {
		t.Error("background is not white")
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(samplePage(), WithTitle("Scale & Arpeggio")))

	for _, want := range []string{
		"<title>Scale &amp; Arpeggio</title>",
		`<g class="measure">`,
		`<line x1="21.5" y1="-6" x2="171.25" y2="-6" stroke="#000" stroke-width="1.5"/>`,
		`<path d="M10 20 Q15 10 20 20 C20 25 10 25 10 20 Z" fill="#000"/>`,
		"</g>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q:\n%s", want, svg)
		}
	}
	if strings.Index(svg, "<rect") > strings.Index(svg, "<g") {
		t.Error("background is not painted first")
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		-0.0001:   "0",
		1.5:       "1.5",
		61.499999: "61.5",
		100:       "100",
		-36:       "-36",
		1.005e3:   "1005",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderPNGSize(t *testing.T) {
	tests := []struct {
		scale float64
		w, h  int
	}{
		{1, 500, 200},
		{2, 1000, 400},
		{0.5, 250, 100},
	}
	for _, tt := range tests {
		data, err := RenderPNG(samplePage(), WithScale(tt.scale))
		if err != nil {
			t.Fatalf("scale %v: RenderPNG() error: %v", tt.scale, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("scale %v: decode: %v", tt.scale, err)
		}
		if cfg.Width != tt.w || cfg.Height != tt.h {
			t.Errorf("scale %v: image %dx%d, want %dx%d", tt.scale, cfg.Width, cfg.Height, tt.w, tt.h)
		}
	}
}

func TestRenderPNGPaintsBackground(t *testing.T) {
	data, err := RenderPNG(emptyPage(), WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := img.At(250, 100).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("center pixel = (%x, %x, %x, %x), want opaque white", r, g, b, a)
	}
}

func TestRenderPNGRejectsBadScale(t *testing.T) {
	for _, s := range []float64{0, -1} {
		if _, err := RenderPNG(emptyPage(), WithScale(s)); err == nil {
			t.Errorf("RenderPNG(scale %v) succeeded", s)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(samplePage(), WithJSONTitle("Scale"), WithJSONLayout(map[string]float64{"width": 500}))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Title != "Scale" || out.Width != 500 || out.Height != 200 {
		t.Errorf("header = %q %vx%v", out.Title, out.Width, out.Height)
	}

	want := []jsonNode{
		{Type: "rect", X: ptr(0), Y: ptr(0), Width: ptr(500), Height: ptr(200), Fill: "#fff"},
		{Type: "group", Class: "measure", Children: []jsonNode{
			{Type: "line", X1: ptr(21.5), Y1: ptr(-6), X2: ptr(171.25), Y2: ptr(-6), Stroke: "#000", StrokeWidth: 1.5},
			{Type: "path", D: "M10 20 Q15 10 20 20 C20 25 10 25 10 20 Z", Fill: "#000"},
		}},
	}
	if diff := cmp.Diff(want, out.Nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSONKeepsZeroCoordinates(t *testing.T) {
	doc := document.New(100, 50)
	doc.Append(&document.Rect{Width: 100, Height: 50, Fill: document.White})
	doc.Append(&document.Line{X1: 0, Y1: 0, X2: 0, Y2: 40, Stroke: document.Black, StrokeWidth: 1})
	doc.Append(&document.Group{Class: "chord"})

	data, err := RenderJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	var raw struct {
		Nodes []map[string]any `json:"nodes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		node int
		keys []string
	}{
		{0, []string{"x", "y", "width", "height"}},
		{1, []string{"x1", "y1", "x2", "y2"}},
	}
	for _, tt := range tests {
		for _, k := range tt.keys {
			if _, ok := raw.Nodes[tt.node][k]; !ok {
				t.Errorf("node %d (%v) lacks %q", tt.node, raw.Nodes[tt.node]["type"], k)
			}
		}
	}
	for _, k := range []string{"x", "y", "x1", "width"} {
		if _, ok := raw.Nodes[2][k]; ok {
			t.Errorf("group node carries geometry key %q", k)
		}
	}
}

func TestRenderJSONIndent(t *testing.T) {
	data, err := RenderJSON(emptyPage(), WithJSONIndent())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("\n  \"width\": 500")) {
		t.Errorf("output not indented:\n%s", data)
	}
}
