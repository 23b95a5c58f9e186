// Package frogger implements a Frogger-style road crossing game.
// The player must cross rows of enemies to reach the far side; every
// crossing scores a bonus and every hit costs a life.
package frogger

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// preloadTimeout bounds how long Reset waits for the first sprite loads.
const preloadTimeout = 2 * time.Second

// Game adapts a Session to the platform's fixed-tick game loop.
type Game struct {
	cfg    config.FroggerConfig
	source sprite.Source
	loader *sprite.Loader
	logger *log.Logger

	runtime core.RuntimeConfig
	session *Session
	paused  bool
	tick    uint64
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.FroggerConfig) GameOption {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithSprites sets where sprites are loaded from.
func WithSprites(src sprite.Source) GameOption {
	return func(g *Game) {
		g.source = src
	}
}

// WithGameLogger sets the logger for the game and its sprite loader.
func WithGameLogger(l *log.Logger) GameOption {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new Frogger game instance.
func New(opts ...GameOption) *Game {
	g := &Game{
		cfg:    config.DefaultFroggerConfig(),
		source: sprite.NewCatalog("", 0, 0),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.loader = sprite.NewLoader(g.source, sprite.WithLogger(g.logger))
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset starts a new session sized to the field (or the screen when the
// field size is 0) and waits briefly for its sprites.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.tick = 0

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	if w <= 0 {
		w = cfg.ScreenW
	}
	if h <= 0 {
		h = cfg.ScreenH
	}

	g.session = NewSession(g.cfg, g.loader, w, h,
		WithSeed(cfg.Seed),
		WithLogger(g.logger),
		WithDebug(cfg.Debug),
	)
	g.session.Start()

	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	defer cancel()
	if err := g.loader.Wait(ctx); err != nil {
		g.logger.Warn("sprites still loading", "error", err)
	}
}

// Step advances the game by one tick of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		// Releases still land so nothing stays held across the pause.
		for _, ev := range in.Events {
			if !ev.Pressed {
				g.session.HandleInput(ev.Direction, false)
			}
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	for _, ev := range in.Events {
		g.session.HandleInput(ev.Direction, ev.Pressed)
	}
	g.session.Tick(g.dt())

	return core.StepResult{State: g.State()}
}

func (g *Game) dt() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1 / float64(rate)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.session.Render(dst)

	if g.paused {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, "Press P to resume", core.ColorGray)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.session.Player().Player
	return core.GameState{
		Score:    p.Score,
		Lives:    p.Lives(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}
