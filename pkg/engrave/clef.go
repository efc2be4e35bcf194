package engrave

import (
	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/glyph"
)

// Drawer places a primitive with its anchor at (x, y).
type Drawer interface {
	Draw(x, y float64, cfg *Config, dst document.Appender)
}

// Clef is a treble clef glyph, sized ten note radii tall.
type Clef struct {
	Outline glyph.Outline
}

// NewClef loads the clef outline and returns it with the horizontal space a
// measure must reserve for it: the outline's bounding-box width plus padding.
func NewClef(cfg *Config) (Clef, float64) {
	o := cfg.Outline(GClef, cfg.NoteRY*10)
	return Clef{Outline: o}, o.Width() + cfg.Padding
}

// Draw appends the clef with its baseline one note radius above y.
func (c Clef) Draw(x, y float64, cfg *Config, dst document.Appender) {
	dst.Append(c.Outline.Path(x, y-cfg.NoteRY))
}
