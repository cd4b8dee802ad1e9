package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "knapsack" {
		t.Errorf("expected problem knapsack, got %s", cfg.Problem)
	}
	if cfg.PopulationSize <= 0 {
		t.Error("population size should be positive")
	}
	if cfg.FrameDelayMs <= 0 {
		t.Error("frame delay should be positive")
	}
	if cfg.MutationChance <= 0 || cfg.MutationChance >= 1 {
		t.Errorf("mutation chance should be in (0,1), got %f", cfg.MutationChance)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("knapsack", "small")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Knapsack.Items != 12 {
		t.Errorf("expected 12 items, got %d", cfg.Knapsack.Items)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("knapsack", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("colors")
	if len(presets) == 0 {
		t.Error("expected presets for colors")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Problem = "colors"
	cfg.PopulationSize = 25
	cfg.Seed = 42
	cfg.Colors.TargetHue = 200

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Problem != "colors" {
		t.Errorf("expected problem colors, got %s", loaded.Problem)
	}
	if loaded.PopulationSize != 25 {
		t.Errorf("expected population 25, got %d", loaded.PopulationSize)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if loaded.Colors.TargetHue != 200 {
		t.Errorf("expected target hue 200, got %f", loaded.Colors.TargetHue)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := []byte("problem: colors\npopulation_size: 10\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.PopulationSize != 10 {
		t.Errorf("expected population 10, got %d", cfg.PopulationSize)
	}
	// Fields absent from the file keep their defaults.
	if cfg.MaxGenerations != DefaultMaxGenerations {
		t.Errorf("expected default max generations, got %d", cfg.MaxGenerations)
	}
	if cfg.Colors.Swatches != DefaultSwatches {
		t.Errorf("expected default swatches, got %d", cfg.Colors.Swatches)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
