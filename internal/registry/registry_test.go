package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return g.title }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{"zz_stub", "Stub Z"} })
	Register("aa_stub", func() Game { return stubGame{"aa_stub", "Stub A"} })

	list := List()
	var ids []string
	for _, g := range list {
		ids = append(ids, g.ID)
	}
	ai, zi := -1, -1
	for i, id := range ids {
		switch id {
		case "aa_stub":
			ai = i
		case "zz_stub":
			zi = i
		}
	}
	if ai < 0 || zi < 0 || ai > zi {
		t.Errorf("List() ids = %v, expected both stubs sorted", ids)
	}

	info, ok := Lookup("zz_stub")
	if !ok || info.Title != "Stub Z" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("Create() built %q", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("no_such_mode") {
		t.Fatal("Exists() reported an unregistered mode")
	}
	_, err := Create("no_such_mode")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{"dup_stub", "Dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{"dup_stub", "Dup"} })
}
