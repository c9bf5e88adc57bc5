package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// summaryView holds the pre-built end-of-game widgets. Duels get a
// score table comparing both players; solo sessions render a plain
// score line instead.
type summaryView struct {
	scores   table.Model
	hasTable bool
}

// newSummaryView builds the summary widgets for a finished session.
func newSummaryView(r engine.Result) summaryView {
	if r.Remote == nil {
		return summaryView{}
	}

	columns := []table.Column{
		{Title: "", Width: 10},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 7},
		{Title: "Level", Width: 7},
	}
	rows := []table.Row{
		{"You", strconv.Itoa(r.Local.Points), strconv.Itoa(r.Local.Lines), strconv.Itoa(r.Local.Level)},
		{"Opponent", strconv.Itoa(r.Remote.Points), strconv.Itoa(r.Remote.Lines), strconv.Itoa(r.Remote.Level)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// The table is static, so no row reads as selected.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return summaryView{scores: t, hasTable: true}
}

// viewSummary renders the end-of-game screen.
func (m Model) viewSummary() string {
	r := *m.result

	title := "GAME OVER"
	if r.Remote != nil {
		switch {
		case r.Reason == engine.EndReasonDisconnect:
			title = "OPPONENT LEFT"
		case r.LocalWon:
			title = "YOU WIN"
		default:
			title = "YOU LOSE"
		}
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.summary.hasTable {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.summary.scores.View()))
	} else {
		line := fmt.Sprintf("SCORE %d   LINES %d   LEVEL %d", r.Local.Points, r.Local.Lines, r.Local.Level)
		b.WriteString(centerText(line, m.width))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.sKeys)))

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
