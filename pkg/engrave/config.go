package engrave

import (
	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/errors"
	"github.com/matzehuels/engrave/pkg/fonts"
	"github.com/matzehuels/engrave/pkg/glyph"
)

// Default layout constants.
const (
	DefaultWidth           = 500.0
	DefaultHeight          = 200.0
	DefaultDocumentPadding = 20.0
	DefaultNoteRX          = 10.0
	DefaultNoteRY          = 6.0
	DefaultPadding         = 10.0
	DefaultStrokeWidth     = 1.5
	DefaultAccidentalSize  = 80.0
	DefaultMinSpacing      = 18.0
	DefaultRowHeight       = 100.0
)

// Layout holds the numeric spacing and size constants of a page.
type Layout struct {
	Width           float64 `toml:"width" json:"width"`
	Height          float64 `toml:"height" json:"height"`
	DocumentPadding float64 `toml:"document_padding" json:"document_padding"`
	NoteRX          float64 `toml:"note_rx" json:"note_rx"`
	NoteRY          float64 `toml:"note_ry" json:"note_ry"`
	Padding         float64 `toml:"padding" json:"padding"`
	StrokeWidth     float64 `toml:"stroke_width" json:"stroke_width"`
	AccidentalSize  float64 `toml:"accidental_size" json:"accidental_size"`
	MinSpacing      float64 `toml:"min_spacing" json:"min_spacing"`
	RowHeight       float64 `toml:"row_height" json:"row_height"`
}

// DefaultLayout returns the stock page: 500x200 with 6/10 note radii.
func DefaultLayout() Layout {
	return Layout{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		DocumentPadding: DefaultDocumentPadding,
		NoteRX:          DefaultNoteRX,
		NoteRY:          DefaultNoteRY,
		Padding:         DefaultPadding,
		StrokeWidth:     DefaultStrokeWidth,
		AccidentalSize:  DefaultAccidentalSize,
		MinSpacing:      DefaultMinSpacing,
		RowHeight:       DefaultRowHeight,
	}
}

// Validate checks that every dimension is usable.
func (l Layout) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", l.Width},
		{"height", l.Height},
		{"note_rx", l.NoteRX},
		{"note_ry", l.NoteRY},
		{"stroke_width", l.StrokeWidth},
		{"accidental_size", l.AccidentalSize},
		{"row_height", l.RowHeight},
	}
	for _, p := range positive {
		if err := errors.ValidatePositive(p.name, p.v); err != nil {
			return err
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"document_padding", l.DocumentPadding},
		{"padding", l.Padding},
		{"min_spacing", l.MinSpacing},
	}
	for _, p := range nonNegative {
		if err := errors.ValidateNonNegative(p.name, p.v); err != nil {
			return err
		}
	}
	return nil
}

// Config is the shared, read-only layout configuration: the page constants
// plus the glyph face every primitive draws with. A Config is built once and
// passed by pointer; nothing in this module modifies it after construction.
type Config struct {
	Layout
	face glyph.Face
}

// NewConfig bundles a layout with an already loaded face.
func NewConfig(face glyph.Face, l Layout) *Config {
	return &Config{Layout: l, face: face}
}

// Load parses font data and builds a configuration around it. A font that
// cannot be parsed, lacks any of [Codepoints] or fails to load one of them is
// fatal: the returned error carries [errors.ErrCodeFont].
func Load(fontData []byte, l Layout) (*Config, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	f, err := glyph.Parse(fontData)
	if err != nil {
		return nil, err
	}
	if missing := f.Missing(Codepoints...); len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeFont, "font %s has no glyph for %U", f, missing)
	}
	if err := f.Check(Codepoints...); err != nil {
		return nil, err
	}
	return NewConfig(f, l), nil
}

// Default builds the stock configuration on the bundled font.
func Default() (*Config, error) {
	return Load(fonts.Default(), DefaultLayout())
}

// Face returns the glyph face owned by the configuration.
func (c *Config) Face() glyph.Face { return c.face }

// Outline is shorthand for c.Face().Outline(r, size).
func (c *Config) Outline(r rune, size float64) glyph.Outline {
	return c.face.Outline(r, size)
}

// Line returns a black stroke of the configured width.
func (c *Config) Line(x1, y1, x2, y2 float64) *document.Line {
	return &document.Line{
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		Stroke:      document.Black,
		StrokeWidth: c.StrokeWidth,
	}
}

// DrawLine appends a configured stroke to dst.
func (c *Config) DrawLine(dst document.Appender, x1, y1, x2, y2 float64) {
	dst.Append(c.Line(x1, y1, x2, y2))
}

// IndexOffset maps a diatonic index to its vertical offset from the top
// reference: ry × (index − 1). Every primitive positioned by index uses it.
func (c *Config) IndexOffset(index int) float64 {
	return c.NoteRY * float64(index-1)
}
