package evo

import "time"

const (
	// DefaultPopulationSize is used when Config.PopulationSize is zero.
	DefaultPopulationSize = 50
	// DefaultFrameDelay approximates one animation frame.
	DefaultFrameDelay = 16 * time.Millisecond
)

// Organism is one candidate solution. The genetic payload G is opaque to
// the engine; its shape is entirely domain-defined.
type Organism[G any] struct {
	Genes G
	// MutationChance is informational metadata for the mutation callback.
	// The engine never reads it.
	MutationChance float64
}

// Model is the aggregate state of one run: a generation counter plus the
// current population. PopulationSize is fixed at construction; the
// population length equals it after initialization and after every
// reproduction step.
type Model[G any] struct {
	PopulationSize int
	Generation     int
	Population     []Organism[G]
}

// Clone returns a copy of the model that shares no mutable state with the
// receiver. Organisms are copied by value; if cloneGenes is non-nil it is
// applied to each payload, which is required for payloads containing
// slices or maps.
func (m *Model[G]) Clone(cloneGenes func(G) G) *Model[G] {
	return &Model[G]{
		PopulationSize: m.PopulationSize,
		Generation:     m.Generation,
		Population:     clonePopulation(m.Population, cloneGenes),
	}
}

func clonePopulation[G any](pop []Organism[G], cloneGenes func(G) G) []Organism[G] {
	out := make([]Organism[G], len(pop))
	copy(out, pop)
	if cloneGenes != nil {
		for i := range out {
			out[i].Genes = cloneGenes(out[i].Genes)
		}
	}
	return out
}

// Callbacks holds the domain logic the engine orchestrates. The first six
// functions are required; the engine performs no validation, so a nil
// callback fails at first use.
type Callbacks[G any] struct {
	// CreateOrganism returns a fresh organism. It is called once per
	// population slot at construction and on Reset; randomized
	// construction is expected.
	CreateOrganism func() Organism[G]
	// Step is the per-frame hook, invoked once per tick after any
	// generation advance, for observable side effects such as rendering
	// or stat collection.
	Step func(*Model[G])
	// Fitness scores an organism. It is re-invoked multiple times per
	// organism while ranking, so it must be side-effect free.
	Fitness func(Organism[G]) float64
	// Crossover derives an offspring from two parents.
	Crossover func(a, b Organism[G]) Organism[G]
	// Mutate transforms an offspring. Returning the argument unchanged
	// and mutating in place are both valid.
	Mutate func(Organism[G]) Organism[G]
	// ShouldTerminate latches the engine out of the running state when it
	// returns true. Nothing resets its inputs, so Play can restart the
	// engine afterwards.
	ShouldTerminate func(*Model[G]) bool
	// ShouldProgressGeneration decides, every tick, whether the
	// reproduction strategy runs before the Step hook. Frames per
	// generation is entirely collaborator-defined.
	ShouldProgressGeneration func(*Model[G]) bool

	// ProduceNextGeneration overrides the default reproduction strategy.
	// It must return a new model with Generation advanced by one and the
	// population length preserved. Nil selects NextGeneration.
	ProduceNextGeneration func(*Model[G]) *Model[G]
	// CloneGenes deep-copies a genetic payload. Nil means payloads are
	// plain value types and a Go assignment copy suffices.
	CloneGenes func(G) G
}

// Config carries the engine's numeric and scheduling parameters.
type Config struct {
	PopulationSize int           // default DefaultPopulationSize
	FrameDelay     time.Duration // delay between ticks, default DefaultFrameDelay
	Scheduler      Scheduler     // default wraps time.AfterFunc
}
