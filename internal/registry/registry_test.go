package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/zombie-jump/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{id: "test_b"} })
	Register("test_a", func() Game { return stubGame{id: "test_a"} })

	if !Exists("test_a") {
		t.Fatal("test_a should be registered")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	games := List()
	var ids []string
	for _, info := range games {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "test_a" || ids[1] != "test_b" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
	if games[0].Title != "Stub test_a" {
		t.Errorf("Title = %q", games[0].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })
}
