package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/engrave/pkg/engrave"
	"github.com/matzehuels/engrave/pkg/pipeline"
	"github.com/matzehuels/engrave/pkg/score"
)

// layoutCommand creates the layout command for inspecting the row partition.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags       layoutFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "layout [score.toml]",
		Short: "Show how a score's measures wrap into rows",
		Long: `Show how a score's measures wrap into rows.

For every row the table lists the number of measures, their total width, the
slack each measure receives to fill the page and the row's baseline. Rows
holding a single measure wider than the page are flagged.

With -i the rows can be browsed interactively, down to measure widths.`,
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
			return c.runLayout(cmd.Context(), args[0], sc, opts, interactive)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse rows interactively")

	return cmd
}

// runLayout packs sc, read from input, and prints or browses the resulting
// rows.
func (c *CLI) runLayout(ctx context.Context, input string, sc *score.Score, opts pipeline.Options, interactive bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	cfg, info, err := pipeline.LoadConfig(ctx, opts)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded font", "source", info.Source, "name", info.Name)

	staff, err := pipeline.NewRunner(c.Logger).Layout(ctx, cfg, sc)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	rows := pipeline.Summarize(cfg, staff)
	if interactive {
		model := NewRowListModel(sc.Title, rows, measureWidths(staff))
		_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
		return err
	}

	writeRowTable(os.Stdout, rows)
	printNewline()
	printKeyValue("Page", fmt.Sprintf("%s × %s", formatFloat(cfg.Width), formatFloat(cfg.Height)))
	printKeyValue("Font", info.Name)
	if overflow := countOverflow(rows); overflow > 0 {
		printWarning("%s wider than the page", plural(overflow, "measure"))
	}
	if n := countBelowPage(rows, cfg); n > 0 {
		printWarning("%s of %d below the page height", plural(n, "row"), len(rows))
	}
	printNextStep("Render", appName+" render "+input)
	return nil
}

// writeRowTable prints rows as a bordered table.
func writeRowTable(w io.Writer, rows []pipeline.RowStat) {
	fmt.Fprintln(w, rowTable(rows, -1).Render())
}

// rowTable builds the row summary table. The row at cursor (if any) is
// highlighted.
func rowTable(rows []pipeline.RowStat, cursor int) *table.Table {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.Index + 1),
			strconv.Itoa(r.Measures),
			formatFloat(r.Width),
			formatFloat(r.Slack),
			formatFloat(r.Baseline),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Row", "Measures", "Width", "Slack", "Baseline").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				base = base.Align(lipgloss.Right)
			}
			switch {
			case row == cursor:
				return base.Foreground(colorCyan).Bold(true)
			case row >= 0 && row < len(rows) && rows[row].Overflow:
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorWhite)
		})
}

func measureWidths(staff *engrave.Staff) [][]float64 {
	out := make([][]float64, len(staff.Rows()))
	for k, row := range staff.Rows() {
		for _, m := range row.Measures() {
			out[k] = append(out[k], m.Width())
		}
	}
	return out
}

func countOverflow(rows []pipeline.RowStat) int {
	n := 0
	for _, r := range rows {
		if r.Overflow {
			n++
		}
	}
	return n
}

// countBelowPage counts the rows whose band reaches past the page height.
func countBelowPage(rows []pipeline.RowStat, cfg *engrave.Config) int {
	n := 0
	for _, r := range rows {
		if r.Baseline+cfg.RowHeight > cfg.Height {
			n++
		}
	}
	return n
}

// formatFloat prints v with at most two decimals and no trailing zeros.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
