package tui

import "github.com/vovakirdan/tui-frogger/internal/core"

// Game is what the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// rendering.
type Game interface {
	// ID returns a unique identifier, used for screenshots and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when the terminal is resized.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
