package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDefaultBindings(t *testing.T) {
	km, err := NewGameKeyMap(config.DefaultConfig().Controls)
	if err != nil {
		t.Fatalf("NewGameKeyMap() error: %v", err)
	}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"up rotates", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"z rotates ccw", keyRune('z'), core.ActionRotateCCW},
		{"shifted z too", keyRune('Z'), core.ActionRotateCCW},
		{"down soft drops", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"space hard drops", tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop},
		{"c holds", keyRune('c'), core.ActionHold},
		{"escape quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"q quits", keyRune('q'), core.ActionQuit},
		{"unbound key", keyRune('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestNewGameKeyMapRejectsBadBinding(t *testing.T) {
	controls := config.DefaultConfig().Controls
	controls.MoveLeft = "warp"

	if _, err := NewGameKeyMap(controls); err == nil {
		t.Error("Expected error for unknown key name in binding")
	}
}

func TestSummaryKeyMapRestartToggle(t *testing.T) {
	km, err := newSummaryKeyMap("escape, q", false)
	if err != nil {
		t.Fatalf("newSummaryKeyMap() error: %v", err)
	}
	if km.Restart.Enabled() {
		t.Error("Restart should be disabled when the session cannot be replayed")
	}

	km, err = newSummaryKeyMap("escape, q", true)
	if err != nil {
		t.Fatalf("newSummaryKeyMap() error: %v", err)
	}
	if !km.Restart.Enabled() {
		t.Error("Restart should be enabled for solo sessions")
	}
}

func TestHelpLabel(t *testing.T) {
	tests := []struct {
		binding string
		want    string
	}{
		{"left", "left"},
		{"space", "space"},
		{"escape, q", "esc/q"},
		{"z", "z"},
	}

	for _, tt := range tests {
		if got := helpLabel(tt.binding); got != tt.want {
			t.Errorf("helpLabel(%q) = %q, expected %q", tt.binding, got, tt.want)
		}
	}
}
