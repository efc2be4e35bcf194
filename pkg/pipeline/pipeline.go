// Package pipeline provides the engraving pipeline shared by every entry
// point: score → layout → render.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Font: resolve and load the glyph resource into an [engrave.Config]
//  2. Layout: build measures from the score and pack them into rows
//  3. Render: draw the staff into a document and serialize it (SVG, PNG,
//     PDF, JSON)
//
// A font that cannot be loaded aborts the run before any layout work.
//
// # Usage
//
//	sc, err := score.Load("scale.toml")
//	if err != nil {
//	    return err
//	}
//	opts := pipeline.DefaultOptions()
//	opts.ApplyScore(sc)
//	opts.Formats = []string{"svg", "png"}
//	result, err := pipeline.NewRunner(logger).Execute(ctx, sc, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Settings are layered, later layers winning: defaults, the score's own
// layout table ([Options.ApplyScore]), an options file ([DecodeOptions]),
// then command-line flags.
//
// [engrave.Config]: github.com/matzehuels/engrave/pkg/engrave.Config
package pipeline

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/engrave/pkg/document"
	"github.com/matzehuels/engrave/pkg/engrave"
	"github.com/matzehuels/engrave/pkg/errors"
	"github.com/matzehuels/engrave/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options contains all configuration for an engraving run.
// It decodes from TOML (see [LoadOptions]) and serializes to JSON.
type Options struct {
	// Layout options
	Layout engrave.Layout `toml:"layout" json:"layout"`

	// Font options
	Font          string `toml:"font" json:"font,omitempty"`                       // Explicit .ttf/.otf path
	NoSystemFonts bool   `toml:"no_system_fonts" json:"no_system_fonts,omitempty"` // Skip system font discovery

	// Render options
	Formats []string `toml:"formats" json:"formats,omitempty"`
	Scale   float64  `toml:"scale" json:"scale,omitempty"` // PNG scale factor
	Title   string   `toml:"title" json:"title,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Staff is the packed row partition.
	Staff *engrave.Staff

	// Document is the drawn page.
	Document *document.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Font describes the glyph resource the run used.
	Font FontInfo

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Measures   int
	Chords     int
	Rows       int
	Paths      int
	Lines      int
	FontTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// DefaultOptions returns options with every default filled in.
func DefaultOptions() Options {
	var o Options
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	return o
}

// LoadOptions reads options from a TOML file. Keys missing from the file
// keep their defaults; unknown keys are an error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	err := DecodeOptions(path, &opts)
	return opts, err
}

// DecodeOptions reads a TOML options file on top of opts. Only keys present
// in the file change opts, so values set earlier (for example from a score's
// layout table) survive unless the file names them.
func DecodeOptions(path string, opts *Options) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	opts.validated = false
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and checks every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	if o.Font != "" {
		if err := errors.ValidatePath(o.Font); err != nil {
			return err
		}
		if err := errors.ValidateExtension(o.Font, ".ttf", ".otf"); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults fills in the layout. A zero layout becomes the default
// page; otherwise only dimensions that must be positive are defaulted, so an
// explicit zero padding survives.
func (o *Options) SetLayoutDefaults() {
	def := engrave.DefaultLayout()
	if o.Layout == (engrave.Layout{}) {
		o.Layout = def
	}
	for _, f := range []struct {
		v   *float64
		def float64
	}{
		{&o.Layout.Width, def.Width},
		{&o.Layout.Height, def.Height},
		{&o.Layout.NoteRX, def.NoteRX},
		{&o.Layout.NoteRY, def.NoteRY},
		{&o.Layout.StrokeWidth, def.StrokeWidth},
		{&o.Layout.AccidentalSize, def.AccidentalSize},
		{&o.Layout.RowHeight, def.RowHeight},
	} {
		if *f.v == 0 {
			*f.v = f.def
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = sink.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
