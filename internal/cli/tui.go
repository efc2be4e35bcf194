package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/engrave/pkg/pipeline"
)

var (
	listTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RowListModel - Interactive row browser
// =============================================================================

// RowListModel is the bubbletea model for browsing the rows of a laid-out
// score. Enter toggles the measure widths of the selected row.
type RowListModel struct {
	Title    string
	Rows     []pipeline.RowStat
	Measures [][]float64 // measure widths per row
	Cursor   int
	Offset   int
	Height   int
	Expanded bool
}

// NewRowListModel creates a row browser. measures[k] holds the widths of the
// measures in row k.
func NewRowListModel(title string, rows []pipeline.RowStat, measures [][]float64) RowListModel {
	return RowListModel{
		Title:    title,
		Rows:     rows,
		Measures: measures,
		Height:   10,
	}
}

func (m RowListModel) Init() tea.Cmd {
	return nil
}

func (m RowListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Rows); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
		m.Offset = max(0, min(m.Offset, len(m.Rows)-m.Height))
	}
	return m, nil
}

func (m RowListModel) View() string {
	var b strings.Builder

	title := "Rows"
	if m.Title != "" {
		title = m.Title
	}
	b.WriteString(listTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ measures  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  empty score"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	b.WriteString(rowTable(m.Rows[m.Offset:end], m.Cursor-m.Offset).Render())
	b.WriteString("\n")

	if m.Expanded && m.Cursor < len(m.Measures) {
		b.WriteString("\n")
		b.WriteString(m.measureView(m.Cursor))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))
	return b.String()
}

// measureView lists the measures of row k with the width each renders at.
func (m RowListModel) measureView(k int) string {
	var b strings.Builder
	slack := m.Rows[k].Slack
	for i, w := range m.Measures[k] {
		line := fmt.Sprintf("  measure %-3d %8s  %s %s",
			i+1, formatFloat(w), iconArrow, formatFloat(w+slack))
		b.WriteString(listNormalStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
