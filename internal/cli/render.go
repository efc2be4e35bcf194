package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/engrave/pkg/errors"
	"github.com/matzehuels/engrave/pkg/pipeline"
	"github.com/matzehuels/engrave/pkg/score"
)

// renderFlags holds the render-only command-line flags.
type renderFlags struct {
	layoutFlags
	output  string
	formats string
	scale   float64
	title   string
}

// renderCommand creates the render command for engraving a score.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [score.toml]",
		Short: "Engrave a score to SVG, PNG, PDF or JSON",
		Long: `Engrave a score to SVG, PNG, PDF or JSON.

The score's measures are wrapped into rows on a page of the configured size,
and each row is stretched to span the page. Page settings are layered, later
ones winning: the score's [layout] table, then --config, then flags.

Use -o - to write a single format to stdout.

PDF output needs rsvg-convert (librsvg) on the PATH.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("toml"),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := score.Load(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, sc)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(flags.formats)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if flags.output == "-" && len(opts.Formats) > 1 {
				return errors.New(errors.ErrCodeInvalidInput,
					"-o - writes a single format to stdout, got %d: %s", len(opts.Formats), strings.Join(opts.Formats, ","))
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = flags.scale
			}
			if cmd.Flags().Changed("title") {
				opts.Title = flags.title
			}
			return c.runRender(cmd.Context(), args[0], sc, opts, flags.output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.scale, "scale", pipeline.DefaultOptions().Scale, "PNG pixels per document unit")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title (default: score title)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender runs the pipeline on sc, read from input, and writes one file
// per format.
func (c *CLI) runRender(ctx context.Context, input string, sc *score.Score, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Debug("loaded score", "path", input, "measures", len(sc.Measures), "chords", sc.NumChords())

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Engraving %s...", filepath.Base(input)))
	spinner.Start()

	result, err := pipeline.NewRunner(c.Logger).Execute(ctx, sc, opts)
	if err != nil {
		if errors.IsFatal(err) {
			spinner.StopWithError("Font could not be loaded")
		} else {
			spinner.StopWithError("Engraving failed")
		}
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}
	prog.done("Engraved " + input)

	printSuccess("Engraved %s", StyleNumber.Render(input))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats)
	for _, sk := range result.Font.Skipped {
		printWarning("Skipped %s: %s missing", sk.Path, plural(len(sk.Missing), "engraving glyph"))
	}
	if len(result.Font.Skipped) > 0 {
		printNextStep("Check coverage", appName+" font "+result.Font.Skipped[0].Path)
	}
	return nil
}

// writeArtifacts writes each rendered format and returns the paths written,
// in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(format, len(formats), input, output)

		out, err := openOutput(path)
		if err != nil {
			return paths, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
		}
		_, werr := out.Write(data)
		cerr := out.Close()
		if werr != nil {
			return paths, fmt.Errorf("write %s: %w", path, werr)
		}
		if cerr != nil {
			return paths, fmt.Errorf("close %s: %w", path, cerr)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath picks the file for one format. A single format written to an
// explicit output uses it verbatim ("-" is stdout); otherwise the format
// becomes the extension of basePath.
func outputPath(format string, n int, input, output string) string {
	if n == 1 && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path. "-" is stdout; anything else is
// created, overwriting an existing file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func formatNames() []string {
	names := make([]string, 0, len(pipeline.ValidFormats))
	for f := range pipeline.ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}
