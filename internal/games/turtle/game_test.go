package turtle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/zombie-jump/internal/config"
	"github.com/vovakirdan/zombie-jump/internal/core"
)

func newTestGame(w, h int) *Game {
	g := NewWithConfig(config.DefaultTurtleConfig())
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 50, Seed: 1})
	return g
}

func TestTurtleStartsCentered(t *testing.T) {
	g := newTestGame(80, 24)

	if x, y := g.Position(); x != 39 || y != 11 {
		t.Errorf("turtle at (%d, %d), want (39, 11)", x, y)
	}
	if len(g.zombies) != 125 {
		t.Errorf("zombies = %d, want 125", len(g.zombies))
	}
}

func TestTurtleMovementClamped(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		steps  int
		wantX  int
		wantY  int
	}{
		{"left to the edge", core.ActionLeft, 100, 0, 11},
		{"right to the edge", core.ActionRight, 100, 79, 11},
		{"up to the edge", core.ActionUp, 100, 39, 0},
		{"down to the edge", core.ActionDown, 100, 39, 23},
		{"one step left", core.ActionLeft, 1, 38, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(80, 24)
			for i := 0; i < tt.steps; i++ {
				g.Step(core.NewInputFrame(tt.action))
			}
			if x, y := g.Position(); x != tt.wantX || y != tt.wantY {
				t.Errorf("turtle at (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestZombiesBounce(t *testing.T) {
	cfg := config.DefaultTurtleConfig()
	cfg.Zombies.Count = 1
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 50, Seed: 1})

	z := g.zombies[0]
	z.X = 19
	z.DX = 0.5

	g.stepZombies() // 19.5
	g.stepZombies() // 20, past the edge
	if z.DX >= 0 {
		t.Fatalf("zombie did not turn at the right edge, dx = %v", z.DX)
	}

	z.X = 0.2
	g.stepZombies() // -0.3
	if z.DX <= 0 {
		t.Errorf("zombie did not turn at the left edge, dx = %v", z.DX)
	}
}

func TestZombieTimer(t *testing.T) {
	g := newTestGame(80, 24)
	start := g.zombies[0].X

	// 20ms ticks against a 30ms timer: the zombies move on the second tick.
	g.Step(core.NewInputFrame())
	if g.zombies[0].X != start {
		t.Fatal("zombies moved before the timer expired")
	}
	g.Step(core.NewInputFrame())
	if g.zombies[0].X == start {
		t.Error("zombies did not move when the timer expired")
	}
}

func TestResize(t *testing.T) {
	g := newTestGame(80, 24)
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame(core.ActionRight))
	}

	g.Resize(40, 12)
	if x, y := g.Position(); x != 39 || y != 11 {
		t.Errorf("turtle at (%d, %d) after resize, want (39, 11)", x, y)
	}
}

func TestTurtlePause(t *testing.T) {
	g := newTestGame(80, 24)
	g.Step(core.NewInputFrame(core.ActionPause))

	g.Step(core.NewInputFrame(core.ActionLeft))
	if x, _ := g.Position(); x != 39 {
		t.Errorf("turtle moved while paused to column %d", x)
	}
	if !g.State().Paused {
		t.Error("State should report paused")
	}
}

func TestTurtleRender(t *testing.T) {
	cfg := config.DefaultTurtleConfig()
	cfg.Zombies.Count = 0
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Get(39, 11) != TurtleChar {
		t.Errorf("turtle not drawn, got %q", screen.Get(39, 11))
	}
	if !strings.HasPrefix(screen.Row(23), MenuText) {
		t.Errorf("menu line = %q", screen.Row(23))
	}
}
