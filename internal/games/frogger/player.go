package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// PlayerState is the kind data of the player.
type PlayerState struct {
	Score  int
	Hearts []*Entity // one per remaining life, last is lost first
	Start  core.Vec

	// Movement intent, each -1, 0 or 1.
	Dx, Dy int

	Speed        float64
	Acceleration float64
	Budget       float64 // acceleration kick left for the current move

	countdown *Entity
}

// Alive reports whether the player has lives left.
func (p *PlayerState) Alive() bool {
	return len(p.Hearts) > 0
}

// Lives returns the number of remaining lives.
func (p *PlayerState) Lives() int {
	return len(p.Hearts)
}

// stop zeroes every movement component and refills the acceleration budget.
func (p *PlayerState) stop(budget float64) {
	p.Acceleration = 0
	p.Budget = budget
	p.Speed = 0
	p.Dx = 0
	p.Dy = 0
}

func (s *Session) playerStart() core.Vec {
	y := s.cfg.Player.StartY
	if y < 0 {
		y += float64(s.height)
	}
	return core.Vec{X: s.cfg.Player.StartX, Y: y}
}

func (s *Session) newPlayer() *Entity {
	start := s.playerStart()
	e := newEntity(KindPlayer, start, sprite.ID(s.cfg.Player.Sprite), MovingFreely)
	e.Caps = CapCollidable | CapInput
	e.Player = &PlayerState{
		Start:  start,
		Budget: s.cfg.Player.AccelerationBudget,
	}
	for i, n := 0, s.cfg.Player.Lives; i < n; i++ {
		s.oneUp(e)
	}
	s.attach(e)
	return e
}

// oneUp adds a heart to the HUD.
func (s *Session) oneUp(player *Entity) {
	p := player.Player
	pos := core.Vec{
		X: float64(len(p.Hearts)) * s.cfg.HUD.HeartOffset,
		Y: s.cfg.HUD.HeartY,
	}
	heart := newEntity(KindHeart, pos, sprite.ID(s.cfg.HUD.HeartSprite), Inactive)
	s.attach(heart)
	p.Hearts = append(p.Hearts, heart)
}

func (s *Session) playerInput(e *Entity, dir core.Direction, pressed bool) {
	p := e.Player
	if !p.Alive() {
		return
	}
	v := 0
	if pressed {
		v = 1
	}
	switch dir {
	case core.DirUp:
		p.Dy = -v
	case core.DirDown:
		p.Dy = v
	case core.DirLeft:
		p.Dx = -v
	case core.DirRight:
		p.Dx = v
	}
}

// stepMovingFreely ramps speed up while a direction is held and stops dead
// once every direction is released.
func (s *Session) stepMovingFreely(e *Entity, dt float64) {
	p := e.Player
	if p.Dx == 0 && p.Dy == 0 {
		p.stop(s.cfg.Player.AccelerationBudget)
		return
	}

	maxSpeed := s.cfg.Player.MaxSpeed
	if p.Speed < maxSpeed {
		p.Acceleration += dt * p.Budget
		p.Speed = math.Min(maxSpeed, p.Speed+p.Acceleration*dt)
	}
	p.Budget = math.Max(0, p.Budget-1)

	e.Pos.X += p.Speed * float64(p.Dx) * dt
	e.Pos.Y += p.Speed * float64(p.Dy) * dt * s.cfg.Player.VerticalScale
	s.keepOnScreen(e)
}

// keepOnScreen clamps the sprite box to the field. The top edge may overflow
// by top_overflow cells so a sprite with transparent padding can reach row 0.
func (s *Session) keepOnScreen(e *Entity) {
	if e.Pos.X < 0 {
		e.Pos.X = 0
	}
	if top := -s.cfg.Player.TopOverflow; e.Pos.Y < top {
		e.Pos.Y = top
	}
	if right := float64(s.width - e.Size.W); e.Pos.X > right {
		e.Pos.X = right
	}
	if bottom := float64(s.height - e.Size.H); e.Pos.Y > bottom {
		e.Pos.Y = bottom
	}
}

// lifeLost sends the last heart vanishing and either restarts the countdown
// or ends the game.
func (s *Session) lifeLost(e *Entity) {
	p := e.Player
	if !p.Alive() {
		return
	}

	heart := p.Hearts[len(p.Hearts)-1]
	p.Hearts = p.Hearts[:len(p.Hearts)-1]
	s.startVanishing(heart)

	if p.Alive() {
		s.logger.Info("life lost", "entity", e.ID, "heart", heart.ID, "lives", p.Lives(), "score", p.Score)
		s.returnToStart(e)
		return
	}

	s.logger.Info("game over", "entity", e.ID, "score", p.Score, "level", s.level)
	e.Caps &^= CapInput
	s.cancelCountdown(p)
	if e.Active() != Inactive {
		e.PushBehaviour(Inactive)
	}
	s.registry.Add(s.newGameOver())
}

// levelComplete awards the crossing bonus.
func (s *Session) levelComplete(e *Entity) {
	e.Player.Score += s.cfg.Gameplay.LevelBonus
	s.level++
	s.logger.Info("level complete", "entity", e.ID, "level", s.level, "score", e.Player.Score)
	s.returnToStart(e)
}

// returnToStart freezes the player at the start position and begins the
// countdown. A countdown already running is replaced rather than stacked.
func (s *Session) returnToStart(e *Entity) {
	p := e.Player
	if e.Active() != Frozen {
		e.PushBehaviour(Frozen)
	}
	e.Pos = p.Start
	p.Speed, p.Acceleration = 0, 0
	p.Budget = s.cfg.Player.AccelerationBudget
	s.cancelCountdown(p)
	p.countdown = s.startCountdown(e)
}

func (s *Session) cancelCountdown(p *PlayerState) {
	if p.countdown == nil {
		return
	}
	s.timers.Cancel(p.countdown.Countdown.token)
	s.registry.Remove(p.countdown)
	s.logger.Debug("countdown cancelled", "entity", p.countdown.ID)
	p.countdown = nil
}

// resume pops the freeze once the countdown has finished.
func (s *Session) resume(e *Entity) {
	e.Player.countdown = nil
	if e.Active() == Frozen {
		e.PopBehaviour()
	}
}
