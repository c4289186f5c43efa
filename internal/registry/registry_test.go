package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tile-studio/internal/core"
)

type fakeGame struct{ id string }

func (f *fakeGame) ID() string                           { return f.id }
func (f *fakeGame) Title() string                        { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig)             {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                  {}
func (f *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Game { return &fakeGame{id: "zz-test"} })

	if !Exists("zz-test") {
		t.Fatal("registered game not found")
	}

	g, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-test" {
		t.Errorf("unexpected id %q", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz-test" {
			found = info.Title == "Fake zz-test"
		}
	}
	if !found {
		t.Error("List() missing registered game or its title")
	}
}

func TestListIsSorted(t *testing.T) {
	Register("zz-b", func() Game { return &fakeGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &fakeGame{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	if Exists("nope") {
		t.Error("Exists should be false for an unknown variant")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })
}
