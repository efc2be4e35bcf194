package engrave

import (
	"fmt"
	"strings"

	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/errors"
)

// StemExtension is how far, in note radii, a stem reaches past the outer
// note of its chord.
const StemExtension = 6.0

// StemDirection selects which side of the chord the stem is drawn on.
type StemDirection int

const (
	StemUp StemDirection = iota
	StemDown
)

func (d StemDirection) String() string {
	switch d {
	case StemUp:
		return "up"
	case StemDown:
		return "down"
	}
	return fmt.Sprintf("StemDirection(%d)", int(d))
}

// ParseStemDirection parses "up" or "down" (case-insensitive).
func ParseStemDirection(s string) (StemDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return StemUp, nil
	case "down":
		return StemDown, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown stem direction %q (want up or down)", s)
}

// Stem spans a chord from its lowest to its highest diatonic index.
type Stem struct {
	Low, High int
}

// NewStem returns a stem for a chord covering low..high.
func NewStem(low, high int) Stem {
	return Stem{Low: low, High: high}
}

// Endpoints returns the stem's line for a chord anchored at (x, y).
func (s Stem) Endpoints(x, y float64, dir StemDirection, cfg *Config) (x1, y1, x2, y2 float64) {
	ry := cfg.NoteRY
	low, high := float64(s.Low), float64(s.High)
	if dir == StemDown {
		lx := x + cfg.StrokeWidth/2
		return lx, y - ry/2 + (low+0.75)*ry, lx, y + (high+StemExtension)*ry
	}
	lx := x + cfg.StrokeWidth + cfg.NoteRX
	return lx, y + (low-StemExtension)*ry, lx, y + ry/2 + (high-0.5)*ry
}

// Draw appends the stem line to dst.
func (s Stem) Draw(x, y float64, dir StemDirection, cfg *Config, dst document.Appender) {
	x1, y1, x2, y2 := s.Endpoints(x, y, dir, cfg)
	cfg.DrawLine(dst, x1, y1, x2, y2)
}
