// Package zombiejump implements Zombie Jump, a vertical platformer where
// the player rides safe platforms scrolling up the screen and avoids
// lethal ones and the screen edges.
package zombiejump

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/zombie-jump/internal/config"
	"github.com/vovakirdan/zombie-jump/internal/core"
	"github.com/vovakirdan/zombie-jump/internal/registry"
)

// Visual characters for rendering
const (
	SafeChar   = '='
	LethalChar = 'x'
	LineChar   = '-'
)

const (
	hudTop    = 2  // First playable row; rows above hold the HUD
	minFieldH = 12 // Smallest playfield the HUD and spawn platform fit in
)

// Game implements the Zombie Jump game logic.
type Game struct {
	cfg      config.ZombieConfig
	override *config.ZombieConfig // Config used instead of loading, set by NewWithConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	gen      *Generator
	track    *Track
	session  *Session
	player   Player
	fieldW   int
	fieldH   int
	dt       time.Duration // Simulated time per Step
	paused   bool
	events   []core.Event
}

// Settings applied by the CLI before the game is created.
var (
	configPath string
	preset     config.Preset
	startLevel int
	startSpeed config.Speed
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the difficulty preset. Unknown names clear it.
func SetPreset(name string) {
	p, err := config.ParsePreset(name)
	if err != nil {
		p = ""
	}
	preset = p
}

// SetStartLevel overrides the configured starting level. Zero keeps it.
func SetStartLevel(level int) {
	startLevel = level
}

// SetStartSpeed overrides the configured starting speed. Empty keeps it.
func SetStartSpeed(name string) {
	s, err := config.ParseSpeed(name)
	if name == "" || err != nil {
		s = ""
	}
	startSpeed = s
}

// New creates a new Zombie Jump game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.ZombieConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zombiejump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Jump"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.fieldW, g.fieldH = fieldSize(g.cfg, runtime)
	g.dt = runtime.TickInterval()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.gen = NewGenerator(g.cfg, g.rng, g.fieldW, g.fieldH)
	g.track = NewTrack(g.gen, g.cfg.Platforms.Count, g.fieldH)
	g.session = NewSession(g.cfg)
	g.paused = false
	g.events = nil
	g.setupLife()
}

func (g *Game) loadConfig() config.ZombieConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadZombie(configPath)
	if err != nil {
		cfg = config.DefaultZombieConfig()
	}
	if preset != "" {
		config.ApplyZombiePreset(&cfg, preset)
	}
	if startLevel > 0 {
		cfg.Rules.StartLevel = core.Clamp(startLevel, 1, len(cfg.Levels))
	}
	if startSpeed != "" {
		cfg.Rules.StartSpeed = string(startSpeed)
	}
	return cfg
}

// fieldSize fits the configured board into the terminal, never shrinking
// below what the HUD needs or below the width at which the generator can
// keep every platform apart from its predecessor.
func fieldSize(cfg config.ZombieConfig, runtime core.RuntimeConfig) (int, int) {
	w, h := cfg.Board.Width, cfg.Board.Height
	if runtime.ScreenW > 0 {
		w = core.Min(w, runtime.ScreenW)
	}
	if runtime.ScreenH > 0 {
		h = core.Min(h, runtime.ScreenH)
	}

	widest := 1
	for _, lvl := range cfg.Levels {
		widest = core.Max(widest, 2*core.Max(lvl.MinWidth, lvl.MaxWidth))
	}
	minW := config.MinBoardWidth(widest, cfg.Generator.HorizontalMin)
	return core.Max(w, minW), core.Max(h, minFieldH)
}

// setupLife builds a fresh track and places the player on platform 0.
func (g *Game) setupLife() {
	g.track.Setup(g.session.Level)

	spawn := g.track.At(0)
	g.player = Player{
		X:      spawn.X + g.rng.Intn(spawn.Width),
		Y:      spawn.Y - g.cfg.Player.Height,
		Height: g.cfg.Player.Height,
	}
	g.session.Respawn(platformID{slot: 0, generation: spawn.Generation})
}

// Step advances the game by one loop iteration.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.session.Phase {
	case PhaseOver:
		if in.Has(core.ActionRestart) {
			g.restart()
			return g.result(true)
		}
		return g.result(false)
	case PhaseDied:
		g.setupLife()
		g.emit(core.EventRespawn, g.session.Lives)
		return g.result(true)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return g.result(true)
	}
	if g.paused {
		return g.result(false)
	}

	redraw := g.handleInput(in)
	if g.session.Phase != PhasePlaying {
		return g.result(true)
	}
	// Settle the input move first so the timers below add at most one row
	// of relative motion on top of a resolved position.
	if g.resolve() {
		redraw = true
	}
	if g.session.Phase != PhasePlaying {
		return g.result(true)
	}

	supported := Supported(g.player, g.track.Platforms())
	ticks := g.session.Advance(g.dt)
	if ticks.Second {
		redraw = true
	}
	if ticks.Scroll {
		for _, slot := range g.track.ScrollAndRecycle(g.session.Level) {
			g.emit(core.EventPlatformRecycled, slot)
		}
		redraw = true
	}
	// A platform that carried the player up this tick already moved them.
	if ticks.Gravity && !supported && !Supported(g.player, g.track.Platforms()) {
		g.player.Y++
		redraw = true
	}

	if g.resolve() {
		redraw = true
	}
	if g.session.Phase != PhasePlaying {
		return g.result(true)
	}

	if g.atEdge() {
		g.die()
		return g.result(true)
	}
	g.clampPlayer()
	return g.result(redraw)
}

// handleInput applies at most one action and reports whether anything
// changed. Unknown or disallowed actions are ignored.
func (g *Game) handleInput(in core.InputFrame) bool {
	before := g.player

	switch {
	case in.Has(core.ActionLeft):
		g.player.X--
	case in.Has(core.ActionRight):
		g.player.X++
	case in.Has(core.ActionUp):
		if !g.cfg.Level(g.session.Level).VerticalControl {
			return false
		}
		g.player.Y--
	case in.Has(core.ActionDown):
		g.player.Y++
	case in.Has(core.ActionSpeedSlow):
		return g.changeSpeed(config.SpeedSlow)
	case in.Has(core.ActionSpeedNormal):
		return g.changeSpeed(config.SpeedNormal)
	case in.Has(core.ActionSpeedFast):
		return g.changeSpeed(config.SpeedFast)
	case in.Has(core.ActionCycleLevel):
		g.emit(core.EventLevelChanged, g.session.CycleLevel())
		return true
	default:
		return false
	}

	if g.atEdge() {
		g.die()
		return true
	}
	g.clampPlayer()
	return g.player != before
}

func (g *Game) changeSpeed(speed config.Speed) bool {
	g.session.SetSpeed(speed)
	g.emit(core.EventSpeedChanged, int(g.session.ScrollPeriod()/time.Millisecond))
	return true
}

// resolve applies the collision outcome for this tick and reports whether
// the player moved or died.
func (g *Game) resolve() bool {
	res := Resolve(g.player, g.track.Platforms())
	switch res.Outcome {
	case OutcomeDied:
		g.die()
		return true
	case OutcomeNone:
		return false
	}

	g.player.X += res.DX
	g.player.Y += res.DY

	if res.Outcome == OutcomeLanded {
		id := platformID{slot: res.Slot, generation: g.track.At(res.Slot).Generation}
		if g.session.RecordLanding(id) {
			g.emit(core.EventLanded, g.session.Score)
		}
	}
	return res.DX != 0 || res.DY != 0
}

// atEdge reports whether the player reached the HUD separator rows.
func (g *Game) atEdge() bool {
	return g.player.Y < hudTop || g.player.Y >= g.bottomRow()
}

// bottomRow is the lowest row the player's head may occupy.
func (g *Game) bottomRow() int {
	return g.fieldH - 4
}

func (g *Game) clampPlayer() {
	g.player.X = core.Clamp(g.player.X, 0, g.fieldW-1)
	g.player.Y = core.Clamp(g.player.Y, hudTop, g.bottomRow())
}

func (g *Game) die() {
	phase := g.session.PlayerDied()
	g.clampPlayer()
	if phase == PhaseOver {
		g.emit(core.EventGameOver, g.session.Score)
		return
	}
	g.emit(core.EventPlayerDied, g.session.Lives)
}

// restart starts a new session after game over, keeping the random stream.
func (g *Game) restart() {
	g.session = NewSession(g.cfg)
	g.paused = false
	g.setupLife()
	g.emit(core.EventRestart, g.session.Lives)
}

func (g *Game) emit(t core.EventType, value int) {
	g.events = append(g.events, core.Event{Type: t, Value: value})
}

func (g *Game) result(redraw bool) core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events, Redraw: redraw}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		Level:    g.session.Level,
		GameOver: g.session.Phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// Speed returns the current scroll speed.
func (g *Game) Speed() config.Speed {
	return g.session.Speed
}

// Register the game on package initialization
func init() {
	registry.Register("zombiejump", func() registry.Game {
		return New()
	})
}
