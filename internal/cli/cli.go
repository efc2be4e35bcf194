package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/engrave/pkg/buildinfo"
	"github.com/matzehuels/engrave/pkg/pipeline"
	"github.com/matzehuels/engrave/pkg/score"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used in help text and next-step hints.
const appName = "engrave"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Engrave lays out music notation as SVG, PNG or PDF",
		Long:          `Engrave reads a score manifest, wraps its measures into rows on a fixed-size page and draws clefs, note heads, stems and accidentals with a music font.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.fontCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the page flags shared by render and layout. Only flags the
// user actually set override the options file.
type layoutFlags struct {
	config        string
	font          string
	noSystemFonts bool
	width         float64
	height        float64
	rowHeight     float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	defaults := pipeline.DefaultOptions()
	cmd.Flags().StringVar(&f.config, "config", "", "options file (TOML)")
	cmd.Flags().StringVar(&f.font, "font", "", "font file (.ttf/.otf) with music glyphs")
	cmd.Flags().BoolVar(&f.noSystemFonts, "no-system-fonts", false, "skip searching the system for a music font")
	cmd.Flags().Float64Var(&f.width, "width", defaults.Layout.Width, "page width")
	cmd.Flags().Float64Var(&f.height, "height", defaults.Layout.Height, "page height")
	cmd.Flags().Float64Var(&f.rowHeight, "row-height", defaults.Layout.RowHeight, "distance between rows")
	_ = cmd.MarkFlagFilename("config", "toml")
	_ = cmd.MarkFlagFilename("font", "ttf", "otf")
}

// options layers the run's settings, later layers winning: defaults, the
// score's [layout] table, the options file and the flags set on cmd.
func (f *layoutFlags) options(cmd *cobra.Command, sc *score.Score) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.ApplyScore(sc)
	if f.config != "" {
		if err := pipeline.DecodeOptions(f.config, &opts); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("font") {
		opts.Font = f.font
	}
	if changed("no-system-fonts") {
		opts.NoSystemFonts = f.noSystemFonts
	}
	if changed("width") {
		opts.Layout.Width = f.width
	}
	if changed("height") {
		opts.Layout.Height = f.height
	}
	if changed("row-height") {
		opts.Layout.RowHeight = f.rowHeight
	}
	return opts, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}
