package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-jump/internal/core"
	"github.com/vovakirdan/zombie-jump/internal/games/turtle"
)

// recordingGame records the input of every step.
type recordingGame struct {
	steps  [][]core.Action
	resets int
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState { return core.GameState{} }
func (g *recordingGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "recording") }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	var actions []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if in.Has(a) {
			actions = append(actions, a)
		}
	}
	g.steps = append(g.steps, actions)
	return core.StepResult{}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 50, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestOneKeyPerTick(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, testConfig(), nil)
	if g.resets != 1 {
		t.Fatalf("NewModel reset the game %d times", g.resets)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	want := [][]core.Action{{core.ActionLeft}, {core.ActionRight}, nil}
	if len(g.steps) != len(want) {
		t.Fatalf("steps = %d, want %d", len(g.steps), len(want))
	}
	for i := range want {
		if len(g.steps[i]) != len(want[i]) || (len(want[i]) > 0 && g.steps[i][0] != want[i][0]) {
			t.Errorf("step %d got %v, want %v", i, g.steps[i], want[i])
		}
	}
}

func TestKeyQueueBounded(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), nil)

	for i := 0; i < 3*maxQueuedKeys; i++ {
		m, _ = update(t, m, runeKey('4'))
	}
	if len(m.queue) != maxQueuedKeys {
		t.Errorf("queue length = %d, want %d", len(m.queue), maxQueuedKeys)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), nil)

	m, cmd := update(t, m, runeKey('q'))
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

func TestViewShowsFrameAndHelp(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), nil)

	view := m.View()
	if !strings.Contains(view, "recording") {
		t.Error("view missing rendered frame")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view missing help line")
	}
}

func TestResizeFollowsResizer(t *testing.T) {
	g := turtle.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1}, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 11})
	if m.screen.Width() != 30 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, want 30x10", m.screen.Width(), m.screen.Height())
	}
	if x, y := g.Position(); x > 29 || y > 9 {
		t.Errorf("turtle at (%d, %d) outside the resized screen", x, y)
	}
}
