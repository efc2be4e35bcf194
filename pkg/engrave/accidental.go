package engrave

import (
	"fmt"
	"strings"

	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/errors"
)

// Accidental alters the pitch of a single note.
type Accidental int

const (
	NoAccidental Accidental = iota
	Sharp
	Flat
	Natural
)

// Glyph returns the codepoint of a, or 0 for NoAccidental.
func (a Accidental) Glyph() rune {
	switch a {
	case NoAccidental:
		return 0
	case Sharp:
		return SharpGlyph
	case Flat:
		return FlatGlyph
	case Natural:
		return NatGlyph
	}
	panic(fmt.Sprintf("engrave: unknown accidental %d", int(a)))
}

func (a Accidental) String() string {
	switch a {
	case NoAccidental:
		return ""
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	}
	return fmt.Sprintf("Accidental(%d)", int(a))
}

// ParseAccidental parses "", "sharp", "flat" or "natural" (also #, b, n).
func ParseAccidental(s string) (Accidental, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoAccidental, nil
	case "sharp", "#":
		return Sharp, nil
	case "flat", "b":
		return Flat, nil
	case "natural", "n":
		return Natural, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown accidental %q (want sharp, flat or natural)", s)
}

// Width returns the horizontal space the accidental occupies before its
// note head. NoAccidental takes none.
func (a Accidental) Width(cfg *Config) float64 {
	if a == NoAccidental {
		return 0
	}
	return cfg.Outline(a.Glyph(), cfg.AccidentalSize).Width() + cfg.StrokeWidth
}

// Draw appends the accidental at x, level with a note head at index.
func (a Accidental) Draw(x, top float64, index int, cfg *Config, dst document.Appender) {
	if a == NoAccidental {
		return
	}
	o := cfg.Outline(a.Glyph(), cfg.AccidentalSize)
	dst.Append(o.Path(x, top+cfg.IndexOffset(index)))
}
