// Package tui runs a game inside a Bubble Tea program.
// It handles the terminal UI loop, key mapping, synthesized key releases
// and rendering of the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval is the wall-clock time between ticks; non-positive rates fall
// back to 60 per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
