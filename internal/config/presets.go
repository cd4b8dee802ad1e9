package config

import "sort"

var Presets = map[string]map[string]*Config{
	"knapsack": {
		"small": {
			Problem: "knapsack", PopulationSize: 30, FrameDelayMs: 16,
			MaxGenerations: 100, MutationChance: 0.05,
			Knapsack: KnapsackConfig{Items: 12, Capacity: 30},
		},
		"large": {
			Problem: "knapsack", PopulationSize: 80, FrameDelayMs: 16,
			MaxGenerations: 400, MutationChance: 0.03,
			Knapsack: KnapsackConfig{Items: 32, Capacity: 80},
		},
		"tight": {
			Problem: "knapsack", PopulationSize: 60, FrameDelayMs: 16,
			MaxGenerations: 300, MutationChance: 0.1,
			Knapsack: KnapsackConfig{Items: 20, Capacity: 25},
		},
	},
	"colors": {
		"warm": {
			Problem: "colors", PopulationSize: 40, FrameDelayMs: 16,
			MaxGenerations: 150, MutationChance: 0.08,
			Colors: ColorsConfig{Swatches: 5, TargetHue: 30},
		},
		"cool": {
			Problem: "colors", PopulationSize: 40, FrameDelayMs: 16,
			MaxGenerations: 150, MutationChance: 0.08,
			Colors: ColorsConfig{Swatches: 5, TargetHue: 210},
		},
		"violet": {
			Problem: "colors", PopulationSize: 40, FrameDelayMs: 16,
			MaxGenerations: 200, MutationChance: 0.05,
			Colors: ColorsConfig{Swatches: 7, TargetHue: 280},
		},
	},
}

func GetPreset(problem, name string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
