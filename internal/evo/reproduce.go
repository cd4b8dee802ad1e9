package evo

import "sort"

// NextGeneration is the default reproduction strategy: rank the
// population by descending fitness, fix the top two as parents for the
// whole generation, rebuild the population from crossover, and mutate
// every offspring in order. It returns a new model with the generation
// advanced by one and no mutable state aliased with the input.
//
// Ties in fitness keep their input order (stable sort); the tie-break
// beyond that is deliberately unspecified. The population must hold at
// least two organisms — smaller populations panic on parent selection.
func NextGeneration[G any](m *Model[G], cb Callbacks[G]) *Model[G] {
	ranked := clonePopulation(m.Population, cb.CloneGenes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return cb.Fitness(ranked[i]) > cb.Fitness(ranked[j])
	})

	// Parents are fixed for the whole generation, not resampled per
	// offspring. They come from the cloned ranking, so offspring built
	// from them cannot alias the previous generation.
	parentA, parentB := ranked[0], ranked[1]

	pop := make([]Organism[G], m.PopulationSize)
	for i := range pop {
		pop[i] = cb.Crossover(parentA, parentB)
	}
	for i := range pop {
		pop[i] = cb.Mutate(pop[i])
	}

	return &Model[G]{
		PopulationSize: m.PopulationSize,
		Generation:     m.Generation + 1,
		Population:     pop,
	}
}
