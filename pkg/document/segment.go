package document

// Op identifies the kind of a path segment.
type Op uint8

// Segment operations. The number of meaningful points per op is 1 for
// MoveTo and LineTo, 2 for QuadTo and 3 for CubeTo. Close uses none.
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Point is a 2D coordinate in document units.
type Point struct {
	X, Y float64
}

// Segment is one drawing instruction of a [Path].
type Segment struct {
	Op     Op
	Points [3]Point
}

// NumPoints returns how many entries of Points the op uses.
func (op Op) NumPoints() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 0
	}
}

// Translate returns a copy of segs with every point shifted by (dx, dy).
func Translate(segs []Segment, dx, dy float64) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i].Op = s.Op
		for j := 0; j < s.Op.NumPoints(); j++ {
			out[i].Points[j] = Point{X: s.Points[j].X + dx, Y: s.Points[j].Y + dy}
		}
	}
	return out
}
