package evo

import "testing"

func intGenesCallbacks() Callbacks[[]int] {
	return Callbacks[[]int]{
		Fitness: func(o Organism[[]int]) float64 { return float64(o.Genes[0]) },
		Crossover: func(a, b Organism[[]int]) Organism[[]int] {
			c := make([]int, len(a.Genes))
			copy(c, a.Genes)
			return Organism[[]int]{Genes: c, MutationChance: a.MutationChance}
		},
		Mutate: func(o Organism[[]int]) Organism[[]int] { return o },
		CloneGenes: func(g []int) []int {
			c := make([]int, len(g))
			copy(c, g)
			return c
		},
	}
}

func modelOf(genes ...int) *Model[[]int] {
	pop := make([]Organism[[]int], len(genes))
	for i, g := range genes {
		pop[i] = Organism[[]int]{Genes: []int{g}}
	}
	return &Model[[]int]{PopulationSize: len(genes), Population: pop}
}

func TestNextGenerationBreedsFromTopTwo(t *testing.T) {
	// Identity crossover copies parentA, so every offspring must equal
	// the highest-fitness original.
	m := modelOf(0, 1, 2, 3)
	next := NextGeneration(m, intGenesCallbacks())

	if next.Generation != 1 {
		t.Errorf("generation = %d, want 1", next.Generation)
	}
	if len(next.Population) != 4 {
		t.Fatalf("population length = %d, want 4", len(next.Population))
	}
	for i, o := range next.Population {
		if o.Genes[0] != 3 {
			t.Errorf("offspring %d genes = %v, want [3]", i, o.Genes)
		}
	}
}

func TestNextGenerationIncrementsByExactlyOne(t *testing.T) {
	m := modelOf(5, 1, 4, 2)
	for want := 1; want <= 5; want++ {
		m = NextGeneration(m, intGenesCallbacks())
		if m.Generation != want {
			t.Fatalf("generation = %d, want %d", m.Generation, want)
		}
	}
}

func TestNextGenerationDeterministic(t *testing.T) {
	cb := intGenesCallbacks()
	a := NextGeneration(modelOf(2, 7, 1, 5), cb)
	b := NextGeneration(modelOf(2, 7, 1, 5), cb)

	if a.Generation != b.Generation {
		t.Errorf("generations differ: %d vs %d", a.Generation, b.Generation)
	}
	if len(a.Population) != len(b.Population) {
		t.Fatalf("population lengths differ: %d vs %d", len(a.Population), len(b.Population))
	}
	for i := range a.Population {
		if a.Population[i].Genes[0] != b.Population[i].Genes[0] {
			t.Errorf("offspring %d differs: %v vs %v", i, a.Population[i].Genes, b.Population[i].Genes)
		}
	}
}

func TestNextGenerationDoesNotAliasOldGeneration(t *testing.T) {
	cb := intGenesCallbacks()
	// Mutation writes through the offspring's gene slice.
	cb.Mutate = func(o Organism[[]int]) Organism[[]int] {
		o.Genes[0] = 99
		return o
	}
	m := modelOf(0, 1, 2, 3)
	NextGeneration(m, cb)

	for i, o := range m.Population {
		if o.Genes[0] != i {
			t.Errorf("old generation organism %d mutated to %v", i, o.Genes)
		}
	}
}

// Tie-break among equal fitness scores is unspecified beyond sort
// stability: equally fit organisms keep their input order, so the first
// two become the parents.
func TestNextGenerationStableTieBreak(t *testing.T) {
	cb := intGenesCallbacks()
	cb.Fitness = func(Organism[[]int]) float64 { return 1 }
	cb.Crossover = func(a, b Organism[[]int]) Organism[[]int] {
		return Organism[[]int]{Genes: []int{a.Genes[0], b.Genes[0]}}
	}

	next := NextGeneration(modelOf(10, 20, 30, 40), cb)
	for i, o := range next.Population {
		if o.Genes[0] != 10 || o.Genes[1] != 20 {
			t.Errorf("offspring %d bred from %v, want parents [10 20]", i, o.Genes)
		}
	}
}

func TestNextGenerationMutatesEveryOffspringInOrder(t *testing.T) {
	cb := intGenesCallbacks()
	var order []int
	i := 0
	cb.Mutate = func(o Organism[[]int]) Organism[[]int] {
		order = append(order, i)
		o.Genes[0] += i
		i++
		return o
	}

	next := NextGeneration(modelOf(0, 1, 2), cb)
	if len(order) != 3 {
		t.Fatalf("mutate called %d times, want 3", len(order))
	}
	for j, o := range next.Population {
		if o.Genes[0] != 2+j {
			t.Errorf("offspring %d genes = %v, want [%d]", j, o.Genes, 2+j)
		}
	}
}

func TestCloneSharesNothing(t *testing.T) {
	cb := intGenesCallbacks()
	m := modelOf(1, 2)
	c := m.Clone(cb.CloneGenes)

	c.Population[0].Genes[0] = 77
	c.Generation = 9

	if m.Population[0].Genes[0] != 1 {
		t.Error("clone aliases gene payload")
	}
	if m.Generation != 0 {
		t.Error("clone aliases model fields")
	}
}
