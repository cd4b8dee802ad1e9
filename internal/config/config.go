package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPopulationSize = 50
	DefaultFrameDelayMs   = 16
	DefaultMaxGenerations = 200
	DefaultMutationChance = 0.05
	DefaultKnapsackItems  = 16
	DefaultCapacity       = 40.0
	DefaultSwatches       = 5
	DefaultTargetHue      = 30.0
)

type Config struct {
	Problem        string  `yaml:"problem"`
	PopulationSize int     `yaml:"population_size"`
	FrameDelayMs   int     `yaml:"frame_delay_ms"`
	MaxGenerations int     `yaml:"max_generations"`
	Seed           int64   `yaml:"seed"`
	MutationChance float64 `yaml:"mutation_chance"`

	Knapsack KnapsackConfig `yaml:"knapsack"`
	Colors   ColorsConfig   `yaml:"colors"`
}

type KnapsackConfig struct {
	Items    int     `yaml:"items"`
	Capacity float64 `yaml:"capacity"`
}

type ColorsConfig struct {
	Swatches  int     `yaml:"swatches"`
	TargetHue float64 `yaml:"target_hue"` // degrees, 0-360
}

func DefaultConfig() *Config {
	return &Config{
		Problem:        "knapsack",
		PopulationSize: DefaultPopulationSize,
		FrameDelayMs:   DefaultFrameDelayMs,
		MaxGenerations: DefaultMaxGenerations,
		MutationChance: DefaultMutationChance,
		Knapsack: KnapsackConfig{
			Items:    DefaultKnapsackItems,
			Capacity: DefaultCapacity,
		},
		Colors: ColorsConfig{
			Swatches:  DefaultSwatches,
			TargetHue: DefaultTargetHue,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FrameDelay converts the configured millisecond delay to a duration.
func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}
