package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// EnemyState is the kind data of an enemy.
type EnemyState struct {
	InitialY  float64
	Speed     float64 // cells per second
	Animation Behaviour

	dy     float64 // wobble direction, zero until the first wobble tick
	dAlpha float64 // flicker direction
}

func (s *Session) newEnemy(row float64) *Entity {
	e := newEntity(KindEnemy, core.Vec{X: s.cfg.Enemies.StartX, Y: row}, sprite.ID(s.cfg.Enemies.Sprite), Straight)
	e.Caps = CapCollidable
	e.Enemy = &EnemyState{InitialY: row}
	s.resetEnemy(e)
	s.attach(e)
	return e
}

// resetEnemy moves the enemy back to the left edge of its row with a fresh
// speed and animation.
func (s *Session) resetEnemy(e *Entity) {
	en := e.Enemy
	e.Alpha = 1
	e.Pos = core.Vec{X: s.cfg.Enemies.StartX, Y: en.InitialY}

	factor := 1.0
	if s.player != nil {
		factor = s.difficulty.SpeedFactor(s.player.Player.Score, int(s.ticks))
	}
	en.Speed = (s.cfg.Enemies.MinSpeed + s.rng.Float64()*s.cfg.Enemies.SpeedEntropy) * factor
	en.Animation = enemyAnimations[s.rng.Intn(len(enemyAnimations))]
	en.dy = 0
	en.dAlpha = 0
	e.resetBehaviour(en.Animation)
}

// advance moves the enemy along its row and resets it once half of it has
// left the right edge. It reports whether a reset happened.
func (s *Session) advance(e *Entity, dt float64) bool {
	e.Pos.X += e.Enemy.Speed * dt
	if e.Pos.X > float64(s.width)-float64(e.Size.W)/2 {
		s.resetEnemy(e)
		return true
	}
	return false
}

func (s *Session) stepStraight(e *Entity, dt float64) {
	s.advance(e, dt)
}

// stepWobble bobs the enemy around its row, turning once it is past the
// amplitude in either direction.
func (s *Session) stepWobble(e *Entity, dt float64) {
	en := e.Enemy
	amp, step := s.cfg.Enemies.WobbleAmplitude, s.cfg.Enemies.WobbleStep
	switch {
	case en.dy == 0:
		en.dy = -step
	case e.Pos.Y < en.InitialY-amp:
		en.dy = step
	case e.Pos.Y > en.InitialY+amp:
		en.dy = -step
	}
	if s.advance(e, dt) {
		return
	}
	e.Pos.Y += en.dy
}

// stepFlicker fades the enemy between flicker_min_alpha and fully opaque.
func (s *Session) stepFlicker(e *Entity, dt float64) {
	en := e.Enemy
	minAlpha, step := s.cfg.Enemies.FlickerMinAlpha, s.cfg.Enemies.FlickerStep
	if e.Alpha >= 1 {
		e.Alpha = 1
		en.dAlpha = -step
	}
	if e.Alpha <= minAlpha {
		e.Alpha = minAlpha
		en.dAlpha = step
	}
	if s.advance(e, dt) {
		return
	}
	e.Alpha = core.ClampF(e.Alpha+en.dAlpha, minAlpha, 1)
}
