package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/engrave/pkg/engrave"
	"github.com/matzehuels/engrave/pkg/fonts"
	"github.com/matzehuels/engrave/pkg/glyph"
	"github.com/matzehuels/engrave/pkg/pipeline"
)

// glyphNames labels the engraving codepoints in the coverage table.
var glyphNames = map[rune]string{
	engrave.GClef:       "G clef",
	engrave.QuarterHead: "quarter note head",
	engrave.HalfHead:    "half note head",
	engrave.WholeHead:   "whole note",
	engrave.DotGlyph:    "augmentation dot",
	engrave.SharpGlyph:  "sharp",
	engrave.FlatGlyph:   "flat",
	engrave.NatGlyph:    "natural",
}

// coverage is one line of the font report.
type coverage struct {
	r       rune
	name    string
	covered bool
}

// fontCommand creates the font command for checking glyph coverage.
func (c *CLI) fontCommand() *cobra.Command {
	var noSystemFonts bool

	cmd := &cobra.Command{
		Use:   "font [path]",
		Short: "Report which engraving glyphs a font covers",
		Long: `Report which engraving glyphs a font covers.

Without a path, the font render would pick is checked: the first music font
found on the system that covers every engraving glyph, else the bundled
Engrave Music. Set ` + fonts.FontDirEnv + ` to search a directory first.

A font given with --font must cover every glyph listed here.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeFiles("ttf", "otf"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{NoSystemFonts: noSystemFonts}
			if len(args) == 1 {
				opts.Font = args[0]
			}
			return c.runFont(opts)
		},
	}

	cmd.Flags().BoolVar(&noSystemFonts, "no-system-fonts", false, "skip searching the system for a music font")

	return cmd
}

func (c *CLI) runFont(opts pipeline.Options) error {
	data, info, err := pipeline.ResolveFont(opts)
	if err != nil {
		return err
	}
	f, err := glyph.Parse(data)
	if err != nil {
		return err
	}
	if name := f.Name(); name != "" {
		info.Name = name
	}
	c.Logger.Debug("resolved font", "source", info.Source, "path", info.Path)

	report := checkCoverage(f)

	fmt.Println(StyleTitle.Render(info.Name))
	printKeyValue("Source", info.Source)
	if info.Path != "" {
		printKeyValue("Path", info.Path)
	}
	printNewline()
	writeCoverageTable(os.Stdout, report)
	printNewline()

	for _, sk := range info.Skipped {
		printInfo("Skipped %s (%s missing)", sk.Path, plural(len(sk.Missing), "glyph"))
	}

	missing := 0
	for _, cv := range report {
		if !cv.covered {
			missing++
		}
	}
	if missing == 0 {
		printSuccess("All %d engraving glyphs covered", len(report))
		return nil
	}

	printWarning("%d of %d engraving glyphs missing; render rejects this font", missing, len(report))
	printInfo("Fonts searched for: %s", strings.Join(fonts.MusicFontFiles, ", "))
	printNextStep("Use the bundled font", appName+" render score.toml")
	return nil
}

func checkCoverage(f *glyph.Font) []coverage {
	report := make([]coverage, len(engrave.Codepoints))
	for i, r := range engrave.Codepoints {
		report[i] = coverage{r: r, name: glyphNames[r], covered: f.Covers(r)}
	}
	return report
}

func writeCoverageTable(w io.Writer, report []coverage) {
	rows := make([][]string, len(report))
	for i, cv := range report {
		mark := iconSuccess
		if !cv.covered {
			mark = iconError
		}
		rows[i] = []string{mark, fmt.Sprintf("U+%04X", cv.r), cv.name}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Codepoint", "Glyph").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(report) {
				return base
			}
			if !report[row].covered {
				return base.Foreground(colorRed)
			}
			if col == 0 {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorWhite)
		})
	fmt.Fprintln(w, t.Render())
}
