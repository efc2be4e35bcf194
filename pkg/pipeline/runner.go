package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/engrave/pkg/engrave"
	"github.com/matzehuels/engrave/pkg/observability"
	"github.com/matzehuels/engrave/pkg/score"
)

// Runner executes the pipeline and logs each stage.
//
// The Runner keeps no results between calls: every run recomputes font,
// layout and outputs. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete font → layout → render pipeline for sc with opts
// as given. Callers that want the score's own layout table to take part
// apply it first with [Options.ApplyScore]. The score title is used when
// opts has none.
func (r *Runner) Execute(ctx context.Context, sc *score.Score, opts Options) (*Result, error) {
	if opts.Title == "" {
		opts.Title = sc.Title
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Font
	fontStart := time.Now()
	cfg, info, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	result.Font = info
	result.Stats.FontTime = time.Since(fontStart)

	r.Logger.Info("loaded font",
		"source", info.Source,
		"name", info.Name,
		"duration", result.Stats.FontTime)
	for _, s := range info.Skipped {
		r.Logger.Warn("skipped font without music glyphs", "path", s.Path, "missing", len(s.Missing))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	staff, err := r.Layout(ctx, cfg, sc)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Staff = staff
	result.Stats.Measures = staff.Len()
	result.Stats.Chords = sc.NumChords()
	result.Stats.Rows = len(staff.Rows())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	doc := engrave.NewRenderer(cfg).Render(staff)
	artifacts, err := Render(doc, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Artifacts = artifacts
	_, result.Stats.Lines, result.Stats.Paths = doc.Count()

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"paths", result.Stats.Paths,
		"lines", result.Stats.Lines,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout packs the score into rows, logging each row at debug level.
func (r *Runner) Layout(ctx context.Context, cfg *engrave.Config, sc *score.Score) (*engrave.Staff, error) {
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(sc.Measures))

	staff, err := Layout(cfg, sc)
	duration := time.Since(start)
	rows := 0
	if staff != nil {
		rows = len(staff.Rows())
	}
	observability.Pipeline().OnLayoutComplete(ctx, rows, duration, err)
	if err != nil {
		return nil, err
	}

	for _, row := range Summarize(cfg, staff) {
		r.Logger.Debug("row",
			"index", row.Index,
			"measures", row.Measures,
			"width", row.Width,
			"slack", row.Slack)
		if row.Overflow {
			r.Logger.Warn("measure wider than page", "row", row.Index, "width", row.Width, "page", cfg.Width)
		}
	}
	r.Logger.Info("computed layout",
		"measures", staff.Len(),
		"rows", rows,
		"duration", duration)
	return staff, nil
}
