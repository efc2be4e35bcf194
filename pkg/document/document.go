package document

// Default paint values used by the engraver.
const (
	White = "#fff"
	Black = "#000"
)

// Node is a drawable element of a document. The set of node kinds is closed:
// [*Rect], [*Line], [*Path] and [*Group].
type Node interface {
	node()
}

// Appender accepts drawables. Both [*Document] and [*Group] implement it so
// that glyph primitives can draw into either.
type Appender interface {
	Append(n Node)
}

// Document is a fixed-size vector page.
type Document struct {
	Width    float64
	Height   float64
	Children []Node
}

// New creates an empty document with the given declared size.
func New(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// Append adds n as the last top-level child.
func (d *Document) Append(n Node) { d.Children = append(d.Children, n) }

// Walk calls fn for every node in paint order, descending into groups.
// Groups are visited before their children.
func (d *Document) Walk(fn func(Node)) {
	walk(d.Children, fn)
}

func walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		if g, ok := n.(*Group); ok {
			walk(g.Children, fn)
		}
	}
}

// Count returns how many rects, lines and paths the document holds.
// Groups are not counted themselves.
func (d *Document) Count() (rects, lines, paths int) {
	d.Walk(func(n Node) {
		switch n.(type) {
		case *Rect:
			rects++
		case *Line:
			lines++
		case *Path:
			paths++
		}
	})
	return rects, lines, paths
}

// Group is a named container of nodes.
type Group struct {
	Class    string
	Children []Node
}

// Append adds n as the last child of the group.
func (g *Group) Append(n Node) { g.Children = append(g.Children, n) }

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Fill          string
}

// Line is a stroked straight segment.
type Line struct {
	X1, Y1      float64
	X2, Y2      float64
	Stroke      string
	StrokeWidth float64
}

// Path is a filled outline built from move/line/curve segments in absolute
// coordinates.
type Path struct {
	Segments []Segment
	Fill     string
}

func (*Rect) node()  {}
func (*Line) node()  {}
func (*Path) node()  {}
func (*Group) node() {}
