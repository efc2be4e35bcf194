package engrave

import "github.com/matzehuels/engrave/pkg/document"

// Renderer draws a staff onto a fresh page.
type Renderer struct {
	cfg *Config
}

// NewRenderer returns a renderer for cfg.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() *Config { return r.cfg }

// Baseline returns the y of row k (0-indexed). Rows sit a fixed row height
// apart regardless of their content.
func (r *Renderer) Baseline(k int) float64 {
	return float64(k) * r.cfg.RowHeight
}

// StartX returns the x of the first measure of every row.
func (r *Renderer) StartX() float64 {
	return r.cfg.StrokeWidth + r.cfg.DocumentPadding
}

// Slack returns the horizontal space each measure of row receives so that
// the row spans the page between its paddings. It is negative for rows
// wider than the page.
func (r *Renderer) Slack(row *Row) float64 {
	remaining := r.cfg.Width - row.Width() - r.cfg.DocumentPadding*2
	return remaining / float64(row.Len())
}

// Render lays out the staff on a page of the configured size. The page
// starts with a white background covering it completely; rows are then
// drawn top to bottom with measures left to right.
func (r *Renderer) Render(s *Staff) *document.Document {
	cfg := r.cfg
	doc := document.New(cfg.Width, cfg.Height)
	doc.Append(&document.Rect{
		X: 0, Y: 0,
		Width:  cfg.Width,
		Height: cfg.Height,
		Fill:   document.White,
	})

	for k, row := range s.Rows() {
		y := r.Baseline(k)
		x := r.StartX()
		extra := r.Slack(row)
		for i, m := range row.Measures() {
			x = m.Render(x, y, extra, i, cfg, doc)
		}
	}
	return doc
}
