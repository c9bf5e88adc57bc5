package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameKeyMap binds configured keys to in-game actions. It satisfies
// the bubbles help.KeyMap interface so the footer renders itself.
type GameKeyMap struct {
	MoveLeft  key.Binding
	MoveRight key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	Hold      key.Binding
	Quit      key.Binding
}

// NewGameKeyMap builds the in-game key map from configured bindings.
func NewGameKeyMap(c config.ControlsConfig) (GameKeyMap, error) {
	var km GameKeyMap
	for _, b := range []struct {
		dst     *key.Binding
		binding string
		desc    string
	}{
		{&km.MoveLeft, c.MoveLeft, "left"},
		{&km.MoveRight, c.MoveRight, "right"},
		{&km.RotateCW, c.RotateRight, "rotate"},
		{&km.RotateCCW, c.RotateLeft, "rotate ccw"},
		{&km.SoftDrop, c.SoftDrop, "soft drop"},
		{&km.HardDrop, c.HardDrop, "hard drop"},
		{&km.Hold, c.Hold, "hold"},
		{&km.Quit, c.Quit, "quit"},
	} {
		keys, err := config.ParseKeys(b.binding)
		if err != nil {
			return GameKeyMap{}, fmt.Errorf("%s binding: %w", b.desc, err)
		}
		*b.dst = key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpLabel(b.binding), b.desc))
	}
	return km, nil
}

// MapKey translates a key message to a game action, ActionNone when
// the key is unbound.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.MoveLeft):
		return core.ActionMoveLeft
	case key.Matches(msg, k.MoveRight):
		return core.ActionMoveRight
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.Hold):
		return core.ActionHold
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// ShortHelp returns the condensed footer bindings.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.RotateCW, k.HardDrop, k.Hold, k.Quit}
}

// FullHelp returns all bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.RotateCW, k.RotateCCW},
		{k.SoftDrop, k.HardDrop, k.Hold, k.Quit},
	}
}

// SummaryKeyMap binds the keys available on the end-of-game screen.
type SummaryKeyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

// newSummaryKeyMap builds the summary bindings; quit reuses the
// configured binding so the two screens agree. Restart is hidden when
// the session cannot be replayed, as in a duel.
func newSummaryKeyMap(quitBinding string, canRestart bool) (SummaryKeyMap, error) {
	quitKeys, err := config.ParseKeys(quitBinding)
	if err != nil {
		return SummaryKeyMap{}, fmt.Errorf("quit binding: %w", err)
	}
	km := SummaryKeyMap{
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Quit:    key.NewBinding(key.WithKeys(quitKeys...), key.WithHelp(helpLabel(quitBinding), "quit")),
	}
	km.Restart.SetEnabled(canRestart)
	return km, nil
}

// ShortHelp returns the summary footer bindings.
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp returns the summary bindings for the expanded help view.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Quit}}
}

// helpLabel condenses a configured binding into footer text, so
// "escape, q" reads as "esc/q".
func helpLabel(binding string) string {
	parts := strings.Split(binding, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		if name == "escape" {
			name = "esc"
		}
		names = append(names, name)
	}
	return strings.Join(names, "/")
}
