package engrave

import (
	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/glyph"
)

// HeadSize is the point size note heads and dots are drawn at.
const HeadSize = 75.0

// NoteHead is one note of a chord: a diatonic staff index and a horizontal
// offset from the chord's x position.
type NoteHead struct {
	Index int
	X     float64
}

// NewNoteHead returns a head at index, shifted x units to the right.
func NewNoteHead(index int, x float64) NoteHead {
	return NoteHead{Index: index, X: x}
}

// HeadOutlines builds the head outline for d and, when d is dotted, the dot
// outline. The result can be shared by every head of a chord.
func HeadOutlines(d Duration, cfg *Config) (head glyph.Outline, dot *glyph.Outline) {
	head = cfg.Outline(d.Kind.Head(), HeadSize)
	if d.Dotted {
		o := cfg.Outline(DotGlyph, HeadSize)
		dot = &o
	}
	return head, dot
}

// DotOffset is the horizontal distance from a head's origin to its dot.
func DotOffset(cfg *Config) float64 {
	return cfg.NoteRX*1.5 + cfg.StrokeWidth
}

// Draw builds the outlines for d and draws the head at (noteX, top).
func (n NoteHead) Draw(noteX, top float64, d Duration, cfg *Config, dst document.Appender) {
	head, dot := HeadOutlines(d, cfg)
	n.DrawOutlines(noteX, top, head, dot, cfg, dst)
}

// DrawOutlines draws pre-built outlines. The dot, if any, is appended first
// and sits at the same height as the head.
func (n NoteHead) DrawOutlines(noteX, top float64, head glyph.Outline, dot *glyph.Outline, cfg *Config, dst document.Appender) {
	x := noteX + n.X
	y := top + cfg.IndexOffset(n.Index)
	if dot != nil {
		dst.Append(dot.Path(x+DotOffset(cfg), y))
	}
	dst.Append(head.Path(x, y))
}
