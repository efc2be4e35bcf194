package score

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/engrave/pkg/engrave"
	"github.com/matzehuels/engrave/pkg/engrave/measure"
	"github.com/matzehuels/engrave/pkg/errors"
)

// Score is a single-staff piece as written in a score manifest.
type Score struct {
	Title    string    `toml:"title,omitempty" json:"title,omitempty"`
	Layout   *Layout   `toml:"layout,omitempty" json:"layout,omitempty"`
	Measures []Measure `toml:"measure" json:"measures"`
}

// Layout overrides page settings for one score. Unset keys keep the
// caller's values.
type Layout struct {
	Width     float64 `toml:"width,omitempty" json:"width,omitempty"`
	Height    float64 `toml:"height,omitempty" json:"height,omitempty"`
	RowHeight float64 `toml:"row_height,omitempty" json:"row_height,omitempty"`
}

// Apply copies the non-zero overrides onto l.
func (o *Layout) Apply(l *engrave.Layout) {
	if o == nil {
		return
	}
	if o.Width != 0 {
		l.Width = o.Width
	}
	if o.Height != 0 {
		l.Height = o.Height
	}
	if o.RowHeight != 0 {
		l.RowHeight = o.RowHeight
	}
}

// Measure is one bar.
type Measure struct {
	Clef   bool    `toml:"clef,omitempty" json:"clef,omitempty"`
	Chords []Chord `toml:"chord" json:"chords"`
}

// Chord is a set of simultaneous notes. Duration is quarter, half or whole;
// Stem is up, down or empty for automatic.
type Chord struct {
	Duration string `toml:"duration" json:"duration"`
	Dotted   bool   `toml:"dotted,omitempty" json:"dotted,omitempty"`
	Stem     string `toml:"stem,omitempty" json:"stem,omitempty"`
	Notes    []Note `toml:"note" json:"notes"`
}

// Note is a staff position: 0 is the top line, each step is a line or
// space lower. Accidental is sharp, flat, natural or empty.
type Note struct {
	Index      int    `toml:"index" json:"index"`
	Accidental string `toml:"accidental,omitempty" json:"accidental,omitempty"`
}

// Parse decodes and validates a score manifest. Unknown keys are rejected
// so that typos do not silently drop notes.
func Parse(data []byte) (*Score, error) {
	var s Score
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScore, err, "decode score")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScore, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the score manifest at path.
func Load(path string) (*Score, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if err := errors.ValidateExtension(path, ".toml"); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "score %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read score %s", path)
	}
	return Parse(data)
}

// Marshal encodes the score back to TOML.
func (s *Score) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode score")
	}
	return buf.Bytes(), nil
}

// Validate checks every symbolic value in the score. The first problem is
// reported with its position.
func (s *Score) Validate() error {
	if s.Layout != nil {
		for _, f := range []struct {
			name string
			v    float64
		}{
			{"layout.width", s.Layout.Width},
			{"layout.height", s.Layout.Height},
			{"layout.row_height", s.Layout.RowHeight},
		} {
			if err := errors.ValidateNonNegative(f.name, f.v); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScore, err, "layout")
			}
		}
	}
	for i, m := range s.Measures {
		for j, c := range m.Chords {
			if _, err := c.convert(); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScore, err, "measure %d chord %d", i+1, j+1)
			}
		}
	}
	return nil
}

// NumChords returns the number of chords across all measures.
func (s *Score) NumChords() int {
	n := 0
	for _, m := range s.Measures {
		n += len(m.Chords)
	}
	return n
}

// Build lays out every measure for cfg.
func (s *Score) Build(cfg *engrave.Config) ([]*measure.Measure, error) {
	out := make([]*measure.Measure, 0, len(s.Measures))
	for i, m := range s.Measures {
		chords := make([]measure.Chord, len(m.Chords))
		for j, c := range m.Chords {
			mc, err := c.convert()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidScore, err, "measure %d chord %d", i+1, j+1)
			}
			chords[j] = mc
		}
		var opts []measure.Option
		if m.Clef {
			opts = append(opts, measure.WithClef())
		}
		out = append(out, measure.New(cfg, chords, opts...))
	}
	return out, nil
}

// Staff builds the measures and packs them into rows.
func (s *Score) Staff(cfg *engrave.Config) (*engrave.Staff, error) {
	ms, err := s.Build(cfg)
	if err != nil {
		return nil, err
	}
	var staff engrave.Staff
	for _, m := range ms {
		staff.Push(cfg, m)
	}
	return &staff, nil
}

func (c Chord) convert() (measure.Chord, error) {
	kind, err := engrave.ParseDurationKind(c.Duration)
	if err != nil {
		return measure.Chord{}, err
	}
	stem, err := parseStem(c.Stem)
	if err != nil {
		return measure.Chord{}, err
	}
	if len(c.Notes) == 0 {
		return measure.Chord{}, fmt.Errorf("chord has no notes")
	}

	out := measure.Chord{
		Duration: engrave.Duration{Kind: kind, Dotted: c.Dotted},
		Stem:     stem,
		Notes:    make([]measure.Note, len(c.Notes)),
	}
	for i, n := range c.Notes {
		acc, err := engrave.ParseAccidental(n.Accidental)
		if err != nil {
			return measure.Chord{}, fmt.Errorf("note %d: %w", i+1, err)
		}
		out.Notes[i] = measure.Note{Index: n.Index, Accidental: acc}
	}
	return out, nil
}

func parseStem(s string) (measure.StemPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return measure.StemAuto, nil
	}
	dir, err := engrave.ParseStemDirection(s)
	if err != nil {
		return 0, err
	}
	if dir == engrave.StemUp {
		return measure.StemUp, nil
	}
	return measure.StemDown, nil
}
