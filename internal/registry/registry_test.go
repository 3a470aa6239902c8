package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id      string
	records core.RecordStore
}

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return strings.ToUpper(g.id)
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func (g *stubGame) UseRecords(store core.RecordStore) {
	g.records = store
}

type nopStore struct{}

func (nopStore) Get(context.Context, string) (int, bool, error) { return 0, false, nil }
func (nopStore) Set(context.Context, string, int) error         { return nil }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Fatal("Exists() reports wrong membership")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}

	var a, b int
	for i, info := range List() {
		switch info.ID {
		case "zz_stub_a":
			a = i
			if info.Title != "ZZ_STUB_A" {
				t.Errorf("Title = %q", info.Title)
			}
		case "zz_stub_b":
			b = i
		}
	}
	if a >= b {
		t.Error("List() is not sorted by ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestRecordAware(t *testing.T) {
	var g Game = &stubGame{id: "x"}
	ra, ok := g.(RecordAware)
	if !ok {
		t.Fatal("stub should be RecordAware")
	}
	ra.UseRecords(nopStore{})
	if g.(*stubGame).records == nil {
		t.Error("UseRecords did not hand over the store")
	}
}
