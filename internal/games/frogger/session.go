package frogger

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// Session is one play-through. It owns every piece of mutable game state:
// the registry, timers, bounds cache and RNG.
type Session struct {
	cfg    config.FroggerConfig
	width  int
	height int

	loader     *sprite.Loader
	detector   *sprite.Detector
	registry   *Registry
	timers     *Scheduler
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger
	debug      bool

	player *Entity
	level  int
	ticks  uint64
	games  int
}

// Option configures a Session.
type Option func(*Session)

// WithSeed seeds the session RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDebug enables drawing of collision boxes.
func WithDebug(on bool) Option {
	return func(s *Session) {
		s.debug = on
	}
}

// NewSession creates a session for a width x height field. Start must be
// called before the first Tick.
func NewSession(cfg config.FroggerConfig, loader *sprite.Loader, width, height int, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		width:      width,
		height:     height,
		loader:     loader,
		detector:   sprite.NewDetector(),
		registry:   NewRegistry(),
		timers:     NewScheduler(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(1)),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start discards the previous play-through and sets up a new one: the
// level-end marker, one enemy per row and a fresh player.
func (s *Session) Start() {
	// Nothing from the previous play-through may shape the new one.
	s.player = nil
	s.registry.Clear()
	s.timers.Clear()
	s.level = 1
	s.ticks = 0
	s.games++

	s.registry.Add(s.newMarker())
	for row, n := 0, s.cfg.Field.Rows; row < n; row++ {
		s.registry.Add(s.newEnemy(s.cfg.Field.FirstRowY + float64(row)*s.cfg.Field.RowHeight))
	}
	s.player = s.newPlayer()
	s.registry.Add(s.player)

	s.logger.Info("session started", "game", s.games, "player", s.player.ID, "width", s.width, "height", s.height)
}

// Tick advances the session by dt seconds: finished sprite loads are applied,
// due timers fire, every entity runs its active behaviour in registry order
// and then collisions are resolved.
func (s *Session) Tick(dt float64) {
	s.ticks++
	s.loader.Dispatch()
	s.timers.Advance(dt, s.registry.ContainsID)

	for _, e := range s.registry.All() {
		if s.registry.Contains(e) {
			s.step(e, dt)
		}
	}
	s.collide()
}

// HandleInput dispatches a direction event to every input-capable entity.
// Unknown directions are ignored.
func (s *Session) HandleInput(dir core.Direction, pressed bool) {
	if dir < core.DirUp || dir > core.DirSpace {
		return
	}
	for _, e := range s.registry.Inputs() {
		if !s.registry.Contains(e) || !e.Has(CapInput) {
			continue
		}
		switch e.Kind {
		case KindPlayer:
			s.playerInput(e, dir, pressed)
		case KindGameOver:
			if dir == core.DirSpace && pressed {
				s.logger.Info("restarting after game over")
				s.Start()
			}
		}
	}
}

// collide tests every ordered pair of collidable entities and lets the first
// react to the second.
func (s *Session) collide() {
	var bodies []*Entity
	for _, e := range s.registry.All() {
		if e.Has(CapCollidable) {
			bodies = append(bodies, e)
		}
	}

	for _, a := range bodies {
		for _, b := range bodies {
			if a == b || !s.registry.Contains(a) || !s.registry.Contains(b) {
				continue
			}
			if Intersects(a, b) {
				s.onCollision(a, b)
			}
		}
	}
}

func (s *Session) onCollision(a, b *Entity) {
	if b.Kind != KindPlayer || !b.Player.Alive() {
		return
	}
	switch a.Kind {
	case KindEnemy:
		s.lifeLost(b)
	case KindMarker:
		s.levelComplete(b)
	}
}

// attach fills in the entity's size and visible bounds from its sprite,
// immediately when the sprite is already loaded and otherwise once the
// loader reports it ready.
func (s *Session) attach(e *Entity) {
	if e.Sprite == "" {
		return
	}
	if img, ok := s.loader.Get(e.Sprite); ok {
		s.applySprite(e, img)
		return
	}
	s.loader.Load(e.Sprite, func() {
		if img, ok := s.loader.Get(e.Sprite); ok {
			s.applySprite(e, img)
		}
	})
}

func (s *Session) applySprite(e *Entity, img *sprite.Image) {
	e.Size = Size{W: img.Width, H: img.Height}
	b := s.detector.DetectImage(img)
	if b.Empty() {
		b = core.Rect{}
	}
	e.Bounds = b
}

// Registry returns the live entities.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Player returns the current player.
func (s *Session) Player() *Entity {
	return s.player
}

// Level returns the 1-based level number.
func (s *Session) Level() int {
	return s.level
}

// Ticks returns the number of ticks since Start.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Detector exposes the session's bounds cache.
func (s *Session) Detector() *sprite.Detector {
	return s.detector
}

// GameOver reports whether the player has run out of lives.
func (s *Session) GameOver() bool {
	return s.player != nil && !s.player.Player.Alive()
}

// Size returns the field size in cells.
func (s *Session) Size() (int, int) {
	return s.width, s.height
}
