package frogger

import "github.com/google/uuid"

// Token identifies a scheduled timer.
type Token uint64

// timerEpsilon absorbs float drift from summing frame deltas.
const timerEpsilon = 1e-9

type timer struct {
	token     Token
	owner     uuid.UUID // uuid.Nil for timers without an owner
	remaining float64
	fn        func()
	cancelled bool
}

// Scheduler runs callbacks after a delay measured in simulated seconds.
// Time only advances through Advance, so timers are deterministic and run on
// the frame goroutine.
type Scheduler struct {
	next    Token
	pending []*timer
	byToken map[Token]*timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{byToken: make(map[Token]*timer)}
}

// After schedules fn to run once delay seconds have been advanced. The timer
// is tied to owner's ID: if owner is no longer live when it expires, fn is
// dropped. A nil owner never expires early.
func (s *Scheduler) After(owner *Entity, delay float64, fn func()) Token {
	s.next++
	t := &timer{token: s.next, remaining: delay, fn: fn}
	if owner != nil {
		t.owner = owner.ID
	}
	s.pending = append(s.pending, t)
	s.byToken[t.token] = t
	return t.token
}

// Cancel stops a timer. It returns false if the timer already fired or was
// cancelled.
func (s *Scheduler) Cancel(tok Token) bool {
	t, ok := s.byToken[tok]
	if !ok {
		return false
	}
	t.cancelled = true
	delete(s.byToken, tok)
	return true
}

// Advance moves time forward by dt and runs every expired timer whose owner
// live reports as still present. Timers scheduled from a callback wait for a later Advance.
// It returns the number of callbacks that ran.
func (s *Scheduler) Advance(dt float64, live func(uuid.UUID) bool) int {
	var due []*timer
	kept := s.pending[:0]
	for _, t := range s.pending {
		if t.cancelled {
			continue
		}
		t.remaining -= dt
		if t.remaining <= timerEpsilon {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(s.pending[len(kept):])
	s.pending = kept

	fired := 0
	for _, t := range due {
		if t.cancelled {
			continue
		}
		delete(s.byToken, t.token)
		if t.owner != uuid.Nil && !live(t.owner) {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// Len returns the number of timers still waiting.
func (s *Scheduler) Len() int {
	return len(s.byToken)
}

// Clear cancels every timer.
func (s *Scheduler) Clear() {
	for _, t := range s.pending {
		t.cancelled = true
	}
	clear(s.pending)
	s.pending = s.pending[:0]
	clear(s.byToken)
}
