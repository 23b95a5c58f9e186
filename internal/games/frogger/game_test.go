package frogger

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// scriptedInputs holds right for a while, then pushes up through the road.
func scriptedInputs(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch i {
		case 10:
			frames[i].Push(core.DirRight, true)
		case 70:
			frames[i].Push(core.DirRight, false)
			frames[i].Push(core.DirUp, true)
		case 400:
			frames[i].Push(core.DirUp, false)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(600)

	run := func() ([]Snapshot, core.GameState) {
		g := New()
		g.Reset(testRuntime(12345))
		var snaps []Snapshot
		var state core.GameState
		for i, in := range inputs {
			state = g.Step(in).State
			if i%50 == 0 {
				snaps = append(snaps, g.Snapshot())
			}
		}
		return append(snaps, g.Snapshot()), state
	}

	snaps1, state1 := run()
	snaps2, state2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if !reflect.DeepEqual(snaps1, snaps2) {
		for i := range snaps1 {
			if !reflect.DeepEqual(snaps1[i], snaps2[i]) {
				t.Fatalf("Determinism failed at snapshot %d:\n%+v\n%+v", i, snaps1[i], snaps2[i])
			}
		}
	}
}

func TestGameResetSizesField(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if w, h := g.Session().Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %d, %d, expected screen size", w, h)
	}

	cfg := config.DefaultFroggerConfig()
	cfg.Field.Width = 60
	g = New(WithConfig(cfg))
	g.Reset(testRuntime(1))
	if w, h := g.Session().Size(); w != 60 || h != 24 {
		t.Errorf("Size() = %d, %d, expected configured width", w, h)
	}

	state := g.State()
	if state.Lives != 3 || state.Score != 0 || state.Level != 1 || state.GameOver {
		t.Errorf("initial state = %+v", state)
	}
	// Sprites are ready right after Reset
	if g.Session().Player().Bounds.Empty() {
		t.Error("player bounds should be known after Reset")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(core.NewInputFrame())
	before := g.Snapshot()

	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if after := g.Snapshot(); after.Tick != before.Tick || !reflect.DeepEqual(after.Enemies, before.Enemies) {
		t.Error("game advanced while paused")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Error("resumed step should advance one tick")
	}
}

func TestGameReleaseWhilePaused(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	press := core.NewInputFrame()
	press.Push(core.DirRight, true)
	g.Step(press)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	pause.Push(core.DirRight, false)
	g.Step(pause)

	// Presses while paused are dropped
	held := core.NewInputFrame()
	held.Push(core.DirUp, true)
	g.Step(held)

	resume := core.NewInputFrame()
	resume.Set(core.ActionPause)
	g.Step(resume)

	p := g.Session().Player().Player
	if p.Dx != 0 || p.Dy != 0 {
		t.Errorf("intent after pause = (%d, %d), expected none", p.Dx, p.Dy)
	}
}

func TestGameInputReachesPlayer(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	start := g.Snapshot().PlayerX

	in := core.NewInputFrame()
	in.Push(core.DirRight, true)
	g.Step(in)
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	snap := g.Snapshot()
	if snap.PlayerX <= start {
		t.Errorf("player x = %v, expected to move right from %v", snap.PlayerX, start)
	}
	if snap.Behaviour != MovingFreely || len(snap.Enemies) != 3 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "frogger" || g.Title() != "Frogger" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}
