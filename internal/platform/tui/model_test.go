package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

// fakeGame records what the platform sends it.
type fakeGame struct {
	resets []core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// Copy, the model reuses its frame
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	frame.Events = append(frame.Events, in.Events...)
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(g *fakeGame, clock *testClock) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 9}
	return NewModel(g, cfg,
		WithClock(clock.Now),
		WithHoldTimings(100*time.Millisecond, 300*time.Millisecond),
	)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitResetsWithoutHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &testClock{})

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 40 || got.ScreenH != 11 || got.Seed != 9 {
		t.Errorf("Reset config = %+v", got)
	}
}

func TestModelSynthesizesRelease(t *testing.T) {
	g := &fakeGame{}
	clock := &testClock{now: time.Unix(100, 0)}
	m := newTestModel(g, clock)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(clock.now))
	if len(g.frames) != 1 || len(g.frames[0].Events) != 1 {
		t.Fatalf("frames = %+v", g.frames)
	}
	if ev := g.frames[0].Events[0]; ev != (core.InputEvent{Direction: core.DirRight, Pressed: true}) {
		t.Errorf("first event = %+v", ev)
	}

	// Autorepeat keeps the hold alive without new events
	clock.now = clock.now.Add(250 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(clock.now))
	if n := len(g.frames[1].Events); n != 0 {
		t.Errorf("repeat produced %d events", n)
	}

	clock.now = clock.now.Add(150 * time.Millisecond)
	_, cmd := update(t, m, TickMsg(clock.now))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if ev := g.frames[2].Events; len(ev) != 1 || ev[0] != (core.InputEvent{Direction: core.DirRight, Pressed: false}) {
		t.Errorf("release events = %+v", ev)
	}
}

func TestModelPauseAction(t *testing.T) {
	g := &fakeGame{}
	clock := &testClock{now: time.Unix(0, 0)}
	m := newTestModel(g, clock)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, TickMsg(clock.now))
	if !g.frames[0].Has(core.ActionPause) {
		t.Error("pause action not forwarded")
	}
	update(t, m, TickMsg(clock.now))
	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause action should be cleared after one tick")
	}
}

func TestModelPauseReleasesHeldDirection(t *testing.T) {
	game := frogger.New()
	clock := &testClock{now: time.Unix(0, 0)}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 3}
	m := NewModel(game, cfg,
		WithClock(clock.Now),
		WithHoldTimings(100*time.Millisecond, 300*time.Millisecond),
	)
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(clock.now))
	if dx := game.Session().Player().Player.Dx; dx != 1 {
		t.Fatalf("Dx = %d after pressing right", dx)
	}

	pause := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	m, _ = update(t, m, pause)
	m, _ = update(t, m, TickMsg(clock.now))
	clock.now = clock.now.Add(5 * time.Second)
	m, _ = update(t, m, TickMsg(clock.now))
	m, _ = update(t, m, pause)

	x := game.Session().Player().Pos.X
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, TickMsg(clock.now))
	}
	if m.State().Paused {
		t.Fatal("game should be running again")
	}

	player := game.Session().Player()
	if player.Player.Dx != 0 || player.Player.Speed != 0 {
		t.Errorf("Dx = %d, speed = %v after pause, expected a full stop", player.Player.Dx, player.Player.Speed)
	}
	if player.Pos.X != x {
		t.Errorf("x moved from %v to %v with no key held", x, player.Pos.X)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &testClock{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &testClock{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if len(g.resets) != 1 || g.resets[0].ScreenW != 60 || g.resets[0].ScreenH != 19 {
		t.Fatalf("resets = %+v", g.resets)
	}

	// Same size again is a no-op
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if len(g.resets) != 1 {
		t.Errorf("Reset called %d times for an unchanged size", len(g.resets))
	}

	// A finished game keeps its state
	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Unix(0, 0)))
	update(t, m, tea.WindowSizeMsg{Width: 70, Height: 20})
	if len(g.resets) != 1 {
		t.Error("resize after game over should not reset")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &testClock{})

	view := m.View()
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[0], "fake") {
		t.Errorf("first line = %q", lines[0])
	}
	if len(lines) != 12 {
		t.Errorf("view has %d lines, expected 11 play rows plus help", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "up") {
		t.Errorf("help line = %q", lines[len(lines)-1])
	}
}
