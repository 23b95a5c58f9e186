package frogger

// Behaviour names one per-frame mode of an entity.
type Behaviour int

const (
	Inactive     Behaviour = iota // does nothing
	Straight                      // enemy crossing the road
	Wobble                        // enemy crossing while bobbing up and down
	Flicker                       // enemy crossing while fading in and out
	MovingFreely                  // player following input
	Frozen                        // player waiting for the countdown
	Vanishing                     // lost heart sliding off screen
	AwaitRestart                  // game-over banner waiting for space
)

var behaviourNames = [...]string{
	Inactive:     "inactive",
	Straight:     "straight",
	Wobble:       "wobble",
	Flicker:      "flicker",
	MovingFreely: "moving-freely",
	Frozen:       "frozen",
	Vanishing:    "vanishing",
	AwaitRestart: "await-restart",
}

// String returns a human-readable name for the behaviour.
func (b Behaviour) String() string {
	if b < 0 || int(b) >= len(behaviourNames) {
		return "unknown"
	}
	return behaviourNames[b]
}

// enemyAnimations are the behaviours an enemy picks from on every reset.
var enemyAnimations = [...]Behaviour{Straight, Wobble, Flicker}

// step runs the active behaviour of e for one frame.
func (s *Session) step(e *Entity, dt float64) {
	switch e.Active() {
	case Straight:
		s.stepStraight(e, dt)
	case Wobble:
		s.stepWobble(e, dt)
	case Flicker:
		s.stepFlicker(e, dt)
	case MovingFreely:
		s.stepMovingFreely(e, dt)
	case Vanishing:
		s.stepVanishing(e, dt)
	case Inactive, Frozen, AwaitRestart:
		// Idle until a timer or input event moves the entity on.
	}
}
