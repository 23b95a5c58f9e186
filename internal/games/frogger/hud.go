package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// VanishState is the kind data of a heart sliding off screen.
type VanishState struct {
	Velocity float64 // cells per second, fixed when the slide starts
}

// CountdownState is the kind data of the countdown shown while the player is
// frozen.
type CountdownState struct {
	Count int
	token Token
}

// newMarker builds the logical level-end strip along the top of the field.
// It has no sprite, so its bounds are set by hand.
func (s *Session) newMarker() *Entity {
	e := newEntity(KindMarker, core.Vec{}, "", Inactive)
	e.Caps = CapCollidable
	e.Bounds = core.NewRect(0, 0, s.width, s.cfg.Field.MarkerHeight)
	return e
}

// startVanishing moves a lost heart into the registry so it can slide to the
// right edge over vanish_seconds and remove itself.
func (s *Session) startVanishing(heart *Entity) {
	heart.Alpha = 1
	heart.Vanish = &VanishState{
		Velocity: (float64(s.width) - heart.Pos.X) / s.cfg.Gameplay.VanishSeconds,
	}
	heart.PushBehaviour(Vanishing)
	s.registry.Add(heart)
	s.logger.Debug("heart vanishing", "entity", heart.ID)
}

func (s *Session) stepVanishing(e *Entity, dt float64) {
	if e.Pos.X >= float64(s.width) {
		s.registry.Remove(e)
		s.logger.Debug("entity removed", "entity", e.ID, "kind", e.Kind)
		return
	}
	e.Pos.X += e.Vanish.Velocity * dt
	if e.Alpha > 0.1 {
		e.Alpha -= s.cfg.Gameplay.VanishAlphaStep
	}
}

// startCountdown adds a countdown entity counting from countdown_from to zero,
// one number per countdown_step seconds. When it reaches zero it removes
// itself and unfreezes the player.
func (s *Session) startCountdown(player *Entity) *Entity {
	c := newEntity(KindCountdown, core.Vec{}, "", Inactive)
	c.Countdown = &CountdownState{Count: s.cfg.Gameplay.CountdownFrom}
	s.registry.Add(c)
	s.scheduleCountdown(c, player)
	return c
}

func (s *Session) scheduleCountdown(c, player *Entity) {
	if c.Countdown.Count <= 0 {
		s.registry.Remove(c)
		s.resume(player)
		return
	}
	c.Countdown.token = s.timers.After(c, s.cfg.Gameplay.CountdownStep, func() {
		c.Countdown.Count--
		s.scheduleCountdown(c, player)
	})
}

// newGameOver builds the banner that waits for space to start a new session.
func (s *Session) newGameOver() *Entity {
	e := newEntity(KindGameOver, core.Vec{}, "", AwaitRestart)
	e.Caps = CapInput
	return e
}
