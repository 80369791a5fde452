// Package turtle implements the zombie turtle demo: a turtle steered
// around the screen while a crowd of zombies drifts back and forth.
package turtle

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/zombie-jump/internal/config"
	"github.com/vovakirdan/zombie-jump/internal/core"
	"github.com/vovakirdan/zombie-jump/internal/registry"
)

// Visual characters for rendering
const (
	TurtleChar   = 'H'
	zombieBitmap = "" +
		"***" +
		"* *" +
		"***"
)

// MenuText is shown on the bottom line.
const MenuText = "Menu: 2 = Down; 4 = Left; 6 = Right; 8 = Up; q = Quit."

// Game implements the turtle demo.
type Game struct {
	cfg      config.TurtleConfig
	override *config.TurtleConfig
	runtime  core.RuntimeConfig
	x, y     int // Turtle position
	maxX     int
	maxY     int
	zombies  []*core.Sprite
	timer    *core.Timer
	dt       time.Duration
	paused   bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new turtle demo instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a demo that uses cfg instead of loading one.
func NewWithConfig(cfg config.TurtleConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "turtle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Turtle"
}

// Reset centers the turtle and scatters the zombies.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadTurtle(configPath)
		if err != nil {
			cfg = config.DefaultTurtleConfig()
		}
		g.cfg = cfg
	}

	g.maxX = core.Max(runtime.ScreenW-1, 0)
	g.maxY = core.Max(runtime.ScreenH-1, 0)
	g.x = g.maxX / 2
	g.y = g.maxY / 2
	g.dt = runtime.TickInterval()
	g.timer = core.NewTimer(config.Millis(g.cfg.Zombies.UpdateMS))
	g.paused = false

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.zombies = make([]*core.Sprite, g.cfg.Zombies.Count)
	for i := range g.zombies {
		z := core.NewSprite(float64(rng.Intn(g.maxX+1)), float64(rng.Intn(g.maxY+1)), 3, 3, zombieBitmap)
		z.DX = g.cfg.Zombies.SpeedX
		z.DY = g.cfg.Zombies.SpeedY
		z.Color = core.ColorGreen
		g.zombies[i] = z
	}
}

// Resize adapts the demo to a new terminal size, pulling the turtle back
// inside if needed.
func (g *Game) Resize(w, h int) {
	g.maxX = core.Max(w-1, 0)
	g.maxY = core.Max(h-1, 0)
	g.x = core.Clamp(g.x, 0, g.maxX)
	g.y = core.Clamp(g.y, 0, g.maxY)
}

// Step advances the demo by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Redraw: true}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	moved := g.moveTurtle(in)
	if g.timer.Advance(g.dt) && g.stepZombies() {
		moved = true
	}
	return core.StepResult{State: g.State(), Redraw: moved}
}

func (g *Game) moveTurtle(in core.InputFrame) bool {
	x0, y0 := g.x, g.y

	switch {
	case in.Has(core.ActionLeft):
		g.x--
	case in.Has(core.ActionRight):
		g.x++
	case in.Has(core.ActionUp):
		g.y--
	case in.Has(core.ActionDown):
		g.y++
	}

	g.x = core.Clamp(g.x, 0, g.maxX)
	g.y = core.Clamp(g.y, 0, g.maxY)
	return g.x != x0 || g.y != y0
}

// stepZombies moves every zombie, turning it around once it passes a
// screen edge. Reports whether any zombie changed cell.
func (g *Game) stepZombies() bool {
	w, h := float64(g.maxX+1), float64(g.maxY+1)
	moved := false

	for _, z := range g.zombies {
		x0, y0 := z.Cell()
		z.Step()

		if z.X >= w {
			z.DX = -math.Abs(z.DX)
		} else if z.X < 0 {
			z.DX = math.Abs(z.DX)
		}
		if z.Y >= h {
			z.DY = -math.Abs(z.DY)
		} else if z.Y < 0 {
			z.DY = math.Abs(z.DY)
		}

		if x, y := z.Cell(); x != x0 || y != y0 {
			moved = true
		}
	}
	return moved
}

// Render draws the zombies, the turtle and the menu line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, z := range g.zombies {
		z.Draw(dst)
	}
	dst.SetColored(g.x, g.y, TurtleChar, core.ColorYellow)

	dst.DrawHLine(0, g.maxY, g.maxX+1, ' ')
	dst.DrawText(0, g.maxY, MenuText)
	if g.paused {
		dst.DrawTextCentered(g.maxY/2, " PAUSED ")
	}
}

// State returns the current game state. The demo has no score or lives.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Position returns the turtle's cell.
func (g *Game) Position() (int, int) {
	return g.x, g.y
}

// Register the game on package initialization
func init() {
	registry.Register("turtle", func() registry.Game {
		return New()
	})
}
