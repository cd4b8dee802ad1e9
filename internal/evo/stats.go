package evo

import "math"

// Stats summarizes the fitness distribution of one population.
type Stats struct {
	Best  float64
	Worst float64
	Mean  float64
}

// Summarize scores every organism in the model with fitness and reduces
// the results. It is a read-only helper for display code and never runs
// inside the engine loop.
func Summarize[G any](m *Model[G], fitness func(Organism[G]) float64) Stats {
	if len(m.Population) == 0 {
		return Stats{}
	}
	s := Stats{Best: math.Inf(-1), Worst: math.Inf(1)}
	sum := 0.0
	for _, o := range m.Population {
		f := fitness(o)
		if f > s.Best {
			s.Best = f
		}
		if f < s.Worst {
			s.Worst = f
		}
		sum += f
	}
	s.Mean = sum / float64(len(m.Population))
	return s
}

// Best returns the highest-fitness organism in the model. The second
// return is false for an empty population.
func Best[G any](m *Model[G], fitness func(Organism[G]) float64) (Organism[G], bool) {
	var best Organism[G]
	if len(m.Population) == 0 {
		return best, false
	}
	best = m.Population[0]
	bf := fitness(best)
	for _, o := range m.Population[1:] {
		if f := fitness(o); f > bf {
			best, bf = o, f
		}
	}
	return best, true
}
