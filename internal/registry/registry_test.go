package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false after Register")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create(stub_b) error = %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create(stub_b).ID() = %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub_") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "stub_a=STUB_A,stub_b=STUB_B" {
		t.Errorf("List() = %s, want sorted stubs with titles", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same id should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}

func TestLookup(t *testing.T) {
	Register("stub_lookup", func() Game { return stubGame{id: "stub_lookup"} })

	info, ok := Lookup("stub_lookup")
	if !ok || info.Title != "STUB_LOOKUP" {
		t.Errorf("Lookup(stub_lookup) = %+v, %v", info, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should report false")
	}
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a factory building another id should panic")
		}
	}()
	Register("stub_wrong", func() Game { return stubGame{id: "stub_other"} })
}
