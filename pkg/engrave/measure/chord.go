package measure

import (
	"fmt"
	"sort"

	"github.com/matzehuels/engrave/pkg/engrave"
)

// Note is one pitch of a chord.
type Note struct {
	Index      int
	Accidental engrave.Accidental
}

// StemPolicy chooses how a chord's stem direction is decided.
type StemPolicy int

const (
	StemAuto StemPolicy = iota
	StemUp
	StemDown
)

func (p StemPolicy) String() string {
	switch p {
	case StemAuto:
		return "auto"
	case StemUp:
		return "up"
	case StemDown:
		return "down"
	}
	return fmt.Sprintf("StemPolicy(%d)", int(p))
}

// Chord is a set of simultaneous notes sharing one duration and one stem.
type Chord struct {
	Duration engrave.Duration
	Notes    []Note
	Stem     StemPolicy
}

// Span returns the lowest and highest index of the chord.
// ok is false for a chord without notes.
func (c Chord) Span() (low, high int, ok bool) {
	if len(c.Notes) == 0 {
		return 0, 0, false
	}
	low, high = c.Notes[0].Index, c.Notes[0].Index
	for _, n := range c.Notes[1:] {
		low = min(low, n.Index)
		high = max(high, n.Index)
	}
	return low, high, true
}

// Direction resolves the stem policy. Chords sitting below the middle line
// (index 4) get an up stem.
func (c Chord) Direction() engrave.StemDirection {
	switch c.Stem {
	case StemUp:
		return engrave.StemUp
	case StemDown:
		return engrave.StemDown
	}
	low, high, _ := c.Span()
	if low+high > 8 {
		return engrave.StemUp
	}
	return engrave.StemDown
}

// placed is a chord with its horizontal geometry resolved.
type placed struct {
	Chord
	heads      []engrave.NoteHead
	accidental float64
	shift      float64
	dot        float64
	advance    float64
}

func place(c Chord, cfg *engrave.Config) placed {
	p := placed{Chord: c}

	notes := make([]Note, len(c.Notes))
	copy(notes, c.Notes)
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Index < notes[j].Index })

	// Heads one step from an undisplaced neighbour would overlap, so they
	// move one head width to the right.
	displaced := false
	for i, n := range notes {
		x := 0.0
		if i > 0 && n.Index-notes[i-1].Index == 1 && !displaced {
			x = 2 * cfg.NoteRX
			displaced = true
			p.shift = x
		} else {
			displaced = false
		}
		p.heads = append(p.heads, engrave.NewNoteHead(n.Index, x))
		p.accidental = max(p.accidental, n.Accidental.Width(cfg))
	}
	p.Notes = notes

	if c.Duration.Dotted {
		p.dot = engrave.DotOffset(cfg)
	}
	p.advance = p.accidental + 2*cfg.NoteRX + p.shift + p.dot + cfg.MinSpacing
	return p
}
