package sink

import (
	"encoding/json"

	"github.com/matzehuels/engrave/pkg/document"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title  string
	layout any
	indent bool
}

// WithJSONTitle records the score title.
func WithJSONTitle(t string) JSONOption { return func(r *jsonRenderer) { r.title = t } }

// WithJSONLayout records the layout the document was produced with, so the
// output documents its own spacing constants.
func WithJSONLayout(l any) JSONOption { return func(r *jsonRenderer) { r.layout = l } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Title  string     `json:"title,omitempty"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Layout any        `json:"layout,omitempty"`
	Nodes  []jsonNode `json:"nodes"`
}

// jsonNode is one drawable. Geometry fields are pointers so that a zero
// coordinate is kept while fields a node type does not have are left out.
type jsonNode struct {
	Type        string     `json:"type"`
	Class       string     `json:"class,omitempty"`
	X           *float64   `json:"x,omitempty"`
	Y           *float64   `json:"y,omitempty"`
	Width       *float64   `json:"width,omitempty"`
	Height      *float64   `json:"height,omitempty"`
	X1          *float64   `json:"x1,omitempty"`
	Y1          *float64   `json:"y1,omitempty"`
	X2          *float64   `json:"x2,omitempty"`
	Y2          *float64   `json:"y2,omitempty"`
	D           string     `json:"d,omitempty"`
	Fill        string     `json:"fill,omitempty"`
	Stroke      string     `json:"stroke,omitempty"`
	StrokeWidth float64    `json:"stroke_width,omitempty"`
	Children    []jsonNode `json:"children,omitempty"`
}

func ptr(v float64) *float64 { return &v }

// RenderJSON dumps doc as a JSON tree. Paths are encoded as SVG path data.
func RenderJSON(doc *document.Document, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:  r.title,
		Width:  doc.Width,
		Height: doc.Height,
		Layout: r.layout,
		Nodes:  toJSONNodes(doc.Children),
	}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func toJSONNodes(nodes []document.Node) []jsonNode {
	out := make([]jsonNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *document.Group:
			out = append(out, jsonNode{Type: "group", Class: n.Class, Children: toJSONNodes(n.Children)})
		case *document.Rect:
			out = append(out, jsonNode{
				Type: "rect",
				X:    ptr(n.X), Y: ptr(n.Y), Width: ptr(n.Width), Height: ptr(n.Height),
				Fill: n.Fill,
			})
		case *document.Line:
			out = append(out, jsonNode{
				Type: "line",
				X1:   ptr(n.X1), Y1: ptr(n.Y1), X2: ptr(n.X2), Y2: ptr(n.Y2),
				Stroke: n.Stroke, StrokeWidth: n.StrokeWidth,
			})
		case *document.Path:
			out = append(out, jsonNode{Type: "path", D: PathData(n.Segments), Fill: n.Fill})
		}
	}
	return out
}
