package pipeline

import (
	"context"

	"github.com/matzehuels/engrave/pkg/engrave"
	"github.com/matzehuels/engrave/pkg/fonts"
	"github.com/matzehuels/engrave/pkg/glyph"
	"github.com/matzehuels/engrave/pkg/observability"
	"github.com/matzehuels/engrave/pkg/score"
)

// Font sources, in resolution order.
const (
	FontSourceOption  = "option"
	FontSourceSystem  = "system"
	FontSourceBundled = "bundled"
)

// FontInfo describes the resolved glyph resource.
type FontInfo struct {
	Source string
	Path   string // empty for the bundled font
	Name   string

	// Skipped lists system fonts passed over because they lack engraving
	// glyphs.
	Skipped []SkippedFont
}

// SkippedFont is a discovered font that cannot draw every engraving glyph.
type SkippedFont struct {
	Path    string
	Missing []rune
}

// ResolveFont picks the font for a run: the explicit option, then the first
// music font found on the system that covers every engraving glyph, then the
// bundled font. An explicit font is returned as is; [LoadConfig] rejects it
// if it cannot engrave.
func ResolveFont(opts Options) (data []byte, info FontInfo, err error) {
	if opts.Font != "" {
		data, err = fonts.Read(opts.Font)
		return data, FontInfo{Source: FontSourceOption, Path: opts.Font}, err
	}
	if !opts.NoSystemFonts {
		for _, path := range fonts.Find() {
			b, err := fonts.Read(path)
			if err != nil {
				continue
			}
			f, err := glyph.Parse(b)
			if err != nil {
				continue
			}
			if missing := f.Missing(engrave.Codepoints...); len(missing) > 0 {
				info.Skipped = append(info.Skipped, SkippedFont{Path: path, Missing: missing})
				continue
			}
			info.Source, info.Path, info.Name = FontSourceSystem, path, f.Name()
			return b, info, nil
		}
	}
	info.Source, info.Name = FontSourceBundled, fonts.DefaultName
	return fonts.Default(), info, nil
}

// LoadConfig resolves the font and builds the layout configuration. Any
// error is fatal for the run.
func LoadConfig(ctx context.Context, opts Options) (*engrave.Config, FontInfo, error) {
	data, info, err := ResolveFont(opts)
	if err != nil {
		return nil, info, err
	}
	for _, s := range info.Skipped {
		observability.Font().OnGlyphsMissing(ctx, s.Missing)
	}
	observability.Font().OnFontResolved(ctx, info.Source, info.Path)

	cfg, err := engrave.Load(data, opts.Layout)
	if err != nil {
		return nil, info, err
	}
	if f, ok := cfg.Face().(*glyph.Font); ok && info.Source != FontSourceBundled {
		if name := f.Name(); name != "" {
			info.Name = name
		}
	}
	return cfg, info, nil
}

// ApplyScore fills defaults and lets the score's own layout table override
// o. The score title is used when o has none.
func (o *Options) ApplyScore(sc *score.Score) {
	o.SetLayoutDefaults()
	sc.Layout.Apply(&o.Layout)
	if o.Title == "" {
		o.Title = sc.Title
	}
}

// Layout builds the score's measures and packs them into rows.
func Layout(cfg *engrave.Config, sc *score.Score) (*engrave.Staff, error) {
	return sc.Staff(cfg)
}

// RowStat summarizes one packed row.
type RowStat struct {
	Index    int
	Measures int
	Width    float64
	Slack    float64
	Baseline float64
	Overflow bool // wider than the page on its own
}

// Summarize reports the geometry of every row of staff.
func Summarize(cfg *engrave.Config, staff *engrave.Staff) []RowStat {
	r := engrave.NewRenderer(cfg)
	stats := make([]RowStat, 0, len(staff.Rows()))
	for k, row := range staff.Rows() {
		stats = append(stats, RowStat{
			Index:    k,
			Measures: row.Len(),
			Width:    row.Width(),
			Slack:    r.Slack(row),
			Baseline: r.Baseline(k),
			Overflow: row.Width() >= cfg.Width,
		})
	}
	return stats
}
