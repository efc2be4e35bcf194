package measure

import (
	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/engrave"
)

// Group classes emitted by [Measure.Render].
const (
	ClassMeasure = "measure"
	ClassChord   = "chord"
)

// Staff line indices, top to bottom.
var staffLines = [...]int{0, 2, 4, 6, 8}

// Measure is a bar of chords on a five-line staff, optionally opened by a
// treble clef. It implements [engrave.Measure].
type Measure struct {
	chords    []placed
	clef      engrave.Drawer
	clefWidth float64
	width     float64
}

// Option configures a [Measure].
type Option func(*Measure, *engrave.Config)

// WithClef opens the measure with a treble clef.
func WithClef() Option {
	return func(m *Measure, cfg *engrave.Config) {
		clef, width := engrave.NewClef(cfg)
		m.clef = clef
		m.clefWidth = width
	}
}

// New lays out chords horizontally and fixes the measure's width.
func New(cfg *engrave.Config, chords []Chord, opts ...Option) *Measure {
	m := &Measure{}
	for _, opt := range opts {
		opt(m, cfg)
	}

	m.width = cfg.Padding + m.clefWidth
	for _, c := range chords {
		p := place(c, cfg)
		m.chords = append(m.chords, p)
		m.width += p.advance
	}
	return m
}

// Width returns the measure's natural width, excluding slack.
func (m *Measure) Width() float64 { return m.width }

// Len returns the number of chords.
func (m *Measure) Len() int { return len(m.chords) }

// HasClef reports whether the measure opens with a clef.
func (m *Measure) HasClef() bool { return m.clef != nil }

// Chords returns the chords with notes sorted by index.
func (m *Measure) Chords() []Chord {
	out := make([]Chord, len(m.chords))
	for i, p := range m.chords {
		out[i] = p.Chord
	}
	return out
}

// Render draws the staff lines, barlines, clef and chords. The slack share
// extra is spread evenly after each chord.
func (m *Measure) Render(x, y, extra float64, index int, cfg *engrave.Config, dst document.Appender) float64 {
	g := &document.Group{Class: ClassMeasure}
	end := x + m.width + extra
	top, bottom := y+cfg.IndexOffset(staffLines[0]), y+cfg.IndexOffset(staffLines[len(staffLines)-1])

	for _, i := range staffLines {
		ly := y + cfg.IndexOffset(i)
		cfg.DrawLine(g, x, ly, end, ly)
	}
	if index == 0 {
		cfg.DrawLine(g, x, top, x, bottom)
	}

	cx := x + cfg.Padding
	if m.clef != nil {
		m.clef.Draw(cx, y+6*cfg.NoteRY, cfg, g)
		cx += m.clefWidth
	}

	var share float64
	if len(m.chords) > 0 {
		share = extra / float64(len(m.chords))
	}
	for _, c := range m.chords {
		g.Append(c.render(cx, y, cfg))
		cx += c.advance + share
	}

	cfg.DrawLine(g, end, top, end, bottom)
	dst.Append(g)
	return end
}

func (p placed) render(x, y float64, cfg *engrave.Config) *document.Group {
	g := &document.Group{Class: ClassChord}
	low, high, ok := p.Span()
	if !ok {
		return g
	}

	for _, n := range p.Notes {
		n.Accidental.Draw(x, y, n.Index, cfg, g)
	}

	noteX := x + p.accidental
	head, dot := engrave.HeadOutlines(p.Duration, cfg)
	for _, h := range p.heads {
		h.DrawOutlines(noteX, y, head, dot, cfg, g)
	}

	if p.Duration.Kind.Stemmed() {
		engrave.NewStem(low, high).Draw(noteX, y, p.Direction(), cfg, g)
	}
	return g
}
