package frogger

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/sprite"
)

// Kind tags the concrete variant of an entity.
type Kind int

const (
	KindMarker Kind = iota
	KindEnemy
	KindPlayer
	KindHeart
	KindCountdown
	KindGameOver
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	case KindHeart:
		return "heart"
	case KindCountdown:
		return "countdown"
	case KindGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Caps is a set of capability markers.
type Caps uint8

const (
	CapCollidable Caps = 1 << iota // takes part in the collision pass
	CapInput                       // receives direction events
)

// Size is the nominal sprite size in cells.
type Size struct {
	W, H int
}

// Entity is anything positioned in the play field and tracked by the registry.
type Entity struct {
	ID     uuid.UUID
	Kind   Kind
	Pos    core.Vec
	Sprite sprite.ID // empty for logical-only entities
	Size   Size      // zero until the sprite has loaded
	Bounds core.Rect // visible bounds relative to Pos
	Alpha  float64
	Caps   Caps

	stack []Behaviour

	// Kind data; at most one is set.
	Player    *PlayerState
	Enemy     *EnemyState
	Countdown *CountdownState
	Vanish    *VanishState
}

func newEntity(kind Kind, pos core.Vec, id sprite.ID, def Behaviour) *Entity {
	return &Entity{
		ID:     uuid.New(),
		Kind:   kind,
		Pos:    pos,
		Sprite: id,
		Alpha:  1,
		stack:  []Behaviour{def},
	}
}

// Has reports whether the entity carries every capability in c.
func (e *Entity) Has(c Caps) bool {
	return e.Caps&c == c
}

// Active returns the behaviour on top of the stack.
func (e *Entity) Active() Behaviour {
	return e.stack[len(e.stack)-1]
}

// PushBehaviour makes b the active behaviour, keeping the previous one beneath it.
func (e *Entity) PushBehaviour(b Behaviour) {
	e.stack = append(e.stack, b)
}

// PopBehaviour restores the behaviour beneath the active one.
// The bottom behaviour is never removed.
func (e *Entity) PopBehaviour() {
	if len(e.stack) > 1 {
		e.stack = e.stack[:len(e.stack)-1]
	}
}

// Depth returns the number of stacked behaviours.
func (e *Entity) Depth() int {
	return len(e.stack)
}

// resetBehaviour drops every override and installs b as the only behaviour.
func (e *Entity) resetBehaviour(b Behaviour) {
	e.stack = append(e.stack[:0], b)
}

// WorldBounds returns the visible bounds in world space.
func (e *Entity) WorldBounds() core.RectF {
	return e.Bounds.At(e.Pos)
}

// Intersects reports whether the visible bounds of a and b overlap strictly.
// Entities whose bounds have no area never intersect.
func Intersects(a, b *Entity) bool {
	return a.WorldBounds().Intersects(b.WorldBounds())
}
