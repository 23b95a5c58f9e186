package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Default hold timings. The initial grace covers a typical keyboard
// autorepeat delay.
const (
	DefaultReleaseAfter = 120 * time.Millisecond
	DefaultInitialGrace = 550 * time.Millisecond
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	now        func() time.Time
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithHoldTimings overrides how long a direction stays held without repeats.
func WithHoldTimings(releaseAfter, initialGrace time.Duration) Option {
	return func(m *Model) {
		if releaseAfter > 0 {
			m.holds = NewHoldTracker(releaseAfter, initialGrace)
		}
	}
}

// WithLogger sets the logger used for platform events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		holds:      NewHoldTracker(DefaultReleaseAfter, DefaultInitialGrace),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.screen = core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

func playHeight(h int) int {
	return max(h-helpHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config as the game sees it, without the help row.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	dir, action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
		// Held directions end with the pause, so the game sees their release.
		for _, d := range m.holds.Release() {
			m.inputFrame.Push(d, false)
		}
		return m, nil
	}

	if dir != core.DirNone && m.holds.Press(dir, m.now()) {
		m.inputFrame.Push(dir, true)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	// Reinitialize game with new dimensions; a finished game keeps its
	// final screen until restarted.
	if !m.gameState.GameOver {
		m.holds.Release()
		m.game.Reset(m.gameConfig())
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, d := range m.holds.Expire(m.now()) {
		m.inputFrame.Push(d, false)
	}

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "score", result.State.Score, "level", result.State.Level)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
