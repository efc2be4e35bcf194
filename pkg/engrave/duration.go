package engrave

import (
	"fmt"
	"strings"

	"github.com/matzehuels/engrave/pkg/errors"
)

// Music symbol codepoints used by the engraver.
const (
	GClef       = '\U0001D11E'
	WholeHead   = '\U0001D15D'
	HalfHead    = '\U0001D157'
	QuarterHead = '\U0001D158'
	DotGlyph    = '.'
	SharpGlyph  = '♯'
	FlatGlyph   = '♭'
	NatGlyph    = '♮'
)

// Codepoints lists every rune the engraver may request from a face.
var Codepoints = []rune{
	GClef, QuarterHead, HalfHead, WholeHead, DotGlyph,
	SharpGlyph, FlatGlyph, NatGlyph,
}

// DurationKind is the closed set of note values the engraver draws.
type DurationKind int

const (
	Quarter DurationKind = iota
	Half
	Whole
)

// Head returns the note head codepoint for k.
func (k DurationKind) Head() rune {
	switch k {
	case Quarter:
		return QuarterHead
	case Half:
		return HalfHead
	case Whole:
		return WholeHead
	}
	panic(fmt.Sprintf("engrave: unknown duration kind %d", int(k)))
}

// Stemmed reports whether notes of this kind carry a stem.
func (k DurationKind) Stemmed() bool {
	switch k {
	case Quarter, Half:
		return true
	case Whole:
		return false
	}
	panic(fmt.Sprintf("engrave: unknown duration kind %d", int(k)))
}

func (k DurationKind) String() string {
	switch k {
	case Quarter:
		return "quarter"
	case Half:
		return "half"
	case Whole:
		return "whole"
	}
	return fmt.Sprintf("DurationKind(%d)", int(k))
}

// ParseDurationKind parses "quarter", "half" or "whole" (case-insensitive).
func ParseDurationKind(s string) (DurationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quarter", "crotchet":
		return Quarter, nil
	case "half", "minim":
		return Half, nil
	case "whole", "semibreve":
		return Whole, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown duration %q (want quarter, half or whole)", s)
}

// Duration is a note value plus its augmentation dot.
type Duration struct {
	Kind   DurationKind
	Dotted bool
}

func (d Duration) String() string {
	if d.Dotted {
		return "dotted " + d.Kind.String()
	}
	return d.Kind.String()
}
