package problems

import (
	"testing"

	"github.com/san-kum/evolab/internal/config"
	"github.com/san-kum/evolab/internal/evo"
)

func TestRegistryNew(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()

	for _, name := range []string{"knapsack", "colors"} {
		s, err := r.New(name, cfg, evo.NewManualScheduler())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Running() {
			t.Errorf("%s: session running before Play", name)
		}
		if s.Generation() != 0 {
			t.Errorf("%s: generation = %d, want 0", name, s.Generation())
		}
	}
}

func TestRegistryUnknownProblem(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("sudoku", config.DefaultConfig(), evo.NewManualScheduler()); err == nil {
		t.Error("expected error for unknown problem")
	}
}

func TestRegistryList(t *testing.T) {
	got := NewRegistry().List()
	want := []string{"colors", "knapsack"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
