package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		dir    core.Direction
		action core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.DirUp, core.ActionNone},
		{"w", runeKey('w'), core.DirUp, core.ActionNone},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.DirDown, core.ActionNone},
		{"s", runeKey('s'), core.DirDown, core.ActionNone},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft, core.ActionNone},
		{"h", runeKey('h'), core.DirLeft, core.ActionNone},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.DirRight, core.ActionNone},
		{"d", runeKey('d'), core.DirRight, core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.DirSpace, core.ActionNone},
		{"p", runeKey('p'), core.DirNone, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.DirNone, core.ActionPause},
		{"q", runeKey('q'), core.DirNone, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.DirNone, core.ActionQuit},
		{"unbound", runeKey('z'), core.DirNone, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, action := km.MapKey(tt.msg)
			if dir != tt.dir || action != tt.action {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), dir, action, tt.dir, tt.action)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if got := len(keys.ShortHelp()); got != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", got)
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", total)
	}
}
