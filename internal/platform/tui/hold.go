package tui

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// HoldTracker turns terminal key repeats into press and release events.
// Terminals only report key presses, so a direction counts as released once
// it has not repeated for a while. The first repeat of a held key arrives
// after the keyboard's initial delay, so a longer grace applies until then.
type HoldTracker struct {
	releaseAfter time.Duration
	initialGrace time.Duration
	held         map[core.Direction]*hold
}

type hold struct {
	last     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker. initialGrace applies until the first
// repeat, releaseAfter afterwards.
func NewHoldTracker(releaseAfter, initialGrace time.Duration) *HoldTracker {
	return &HoldTracker{
		releaseAfter: releaseAfter,
		initialGrace: max(initialGrace, releaseAfter),
		held:         make(map[core.Direction]*hold),
	}
}

var opposite = map[core.Direction]core.Direction{
	core.DirUp:    core.DirDown,
	core.DirDown:  core.DirUp,
	core.DirLeft:  core.DirRight,
	core.DirRight: core.DirLeft,
}

// Press records a key press at now. It returns true when the press starts a
// new hold and should be forwarded to the game. Pressing a direction ends the
// hold on its opposite without a release, since the new press already
// overrides that axis.
func (h *HoldTracker) Press(d core.Direction, now time.Time) bool {
	if st, ok := h.held[d]; ok {
		st.last = now
		st.repeated = true
		return false
	}
	if o, ok := opposite[d]; ok {
		delete(h.held, o)
	}
	h.held[d] = &hold{last: now}
	return true
}

// Expire returns the directions whose hold ran out by now, in a stable order,
// and forgets them.
func (h *HoldTracker) Expire(now time.Time) []core.Direction {
	var released []core.Direction
	for d := core.DirUp; d <= core.DirSpace; d++ {
		st, ok := h.held[d]
		if !ok {
			continue
		}
		grace := h.releaseAfter
		if !st.repeated {
			grace = h.initialGrace
		}
		if now.Sub(st.last) >= grace {
			released = append(released, d)
			delete(h.held, d)
		}
	}
	return released
}

// Held reports whether d is currently held.
func (h *HoldTracker) Held(d core.Direction) bool {
	_, ok := h.held[d]
	return ok
}

// Release forgets every hold and returns the directions that were held, in a
// stable order.
func (h *HoldTracker) Release() []core.Direction {
	var released []core.Direction
	for d := core.DirUp; d <= core.DirSpace; d++ {
		if _, ok := h.held[d]; ok {
			released = append(released, d)
		}
	}
	clear(h.held)
	return released
}
