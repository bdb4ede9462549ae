package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	OK       lipgloss.Style
	Problem  lipgloss.Style
	Card     lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Border   lipgloss.Style
}

// newTheme binds the styles to w, so colours are dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Label:    r.NewStyle().Foreground(lipgloss.Color("63")),
		OK:       r.NewStyle().Foreground(lipgloss.Color("42")),
		Problem:  r.NewStyle().Foreground(lipgloss.Color("203")),
		Card: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Header: r.NewStyle().Bold(true).Padding(0, 1),
		Cell:   r.NewStyle().Padding(0, 1),
		Border: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (t theme) table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			return t.Cell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}
