// Package tui provides the Bubble Tea front end for the tetris engine.
// It handles the terminal UI loop, input mapping, and rendering of
// engine snapshots; simulation pacing lives in the engine itself.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once a second to refresh frame statistics and other
// slow-moving chrome.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers the next TickMsg.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
