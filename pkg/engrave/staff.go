package engrave

import "github.com/matzehuels/engrave/pkg/document"

// Measure is one bar of music as the layout engine sees it: a width fixed
// at construction and the ability to draw itself.
//
// Render draws the measure starting at x on the row whose baseline is y.
// extra is the row's slack share for this measure, which the measure spends
// on internal spacing; index is its position within the row. Render returns
// the x at which the next measure starts.
type Measure interface {
	Width() float64
	Render(x, y, extra float64, index int, cfg *Config, dst document.Appender) float64
}

// Row is a left-to-right run of measures. Its width is the running sum of
// the measures' widths taken at insertion time.
type Row struct {
	measures []Measure
	width    float64
}

// Measures returns the row's measures in visual order.
func (r *Row) Measures() []Measure { return r.measures }

// Width returns the summed width of the row's measures.
func (r *Row) Width() float64 { return r.width }

// Len returns the number of measures in the row. It is never zero.
func (r *Row) Len() int { return len(r.measures) }

// Staff is the ordered list of rows that make up one page.
type Staff struct {
	rows []*Row
}

// Push places m on the staff. It joins the last row if the row's width plus
// m's width stays strictly below the page width; otherwise m opens a new
// row, even when it is wider than the page on its own. Closed rows are never
// revisited.
//
// The fit test uses the raw page width and ignores document padding and the
// stroke offset added at render time.
func (s *Staff) Push(cfg *Config, m Measure) {
	w := m.Width()
	if n := len(s.rows); n > 0 {
		row := s.rows[n-1]
		if width := row.width + w; width < cfg.Width {
			row.measures = append(row.measures, m)
			row.width = width
			return
		}
	}
	s.rows = append(s.rows, &Row{measures: []Measure{m}, width: w})
}

// Rows returns the staff's rows top to bottom.
func (s *Staff) Rows() []*Row { return s.rows }

// Len returns the number of measures on the staff.
func (s *Staff) Len() int {
	n := 0
	for _, r := range s.rows {
		n += len(r.measures)
	}
	return n
}
