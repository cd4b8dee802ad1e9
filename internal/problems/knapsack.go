package problems

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/san-kum/evolab/internal/config"
	"github.com/san-kum/evolab/internal/evo"
)

// Item is one packable thing with a weight cost and a value payoff.
type Item struct {
	Name   string
	Weight float64
	Value  float64
}

// Knapsack evolves item selections (one bool per item) toward the most
// valuable load that still fits the capacity. Overweight selections
// score zero rather than being repaired.
type Knapsack struct {
	items    []Item
	capacity float64
	maxGen   int
	chance   float64
	rng      *rand.Rand
	engine   *evo.Engine[[]bool]
	history  []float64
}

// NewKnapsack builds a session from the config. The item set is
// generated from the config seed, so runs are reproducible.
func NewKnapsack(cfg *config.Config, sched evo.Scheduler) *Knapsack {
	k := &Knapsack{
		capacity: cfg.Knapsack.Capacity,
		maxGen:   cfg.MaxGenerations,
		chance:   cfg.MutationChance,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
	k.items = randomItems(k.rng, cfg.Knapsack.Items)

	cb := evo.Callbacks[[]bool]{
		CreateOrganism:           k.createOrganism,
		Step:                     k.step,
		Fitness:                  k.fitness,
		Crossover:                k.crossover,
		Mutate:                   k.mutate,
		ShouldTerminate:          func(m *evo.Model[[]bool]) bool { return m.Generation >= k.maxGen },
		ShouldProgressGeneration: func(*evo.Model[[]bool]) bool { return true },
		CloneGenes: func(g []bool) []bool {
			c := make([]bool, len(g))
			copy(c, g)
			return c
		},
	}
	k.engine = evo.New(cb, evo.Config{
		PopulationSize: cfg.PopulationSize,
		FrameDelay:     cfg.FrameDelay(),
		Scheduler:      sched,
	})
	return k
}

func randomItems(rng *rand.Rand, n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Name:   fmt.Sprintf("item-%02d", i),
			Weight: 1 + rng.Float64()*9,
			Value:  1 + rng.Float64()*19,
		}
	}
	return items
}

func (k *Knapsack) createOrganism() evo.Organism[[]bool] {
	genes := make([]bool, len(k.items))
	for i := range genes {
		genes[i] = k.rng.Float64() < 0.5
	}
	return evo.Organism[[]bool]{Genes: genes, MutationChance: k.chance}
}

func (k *Knapsack) step(m *evo.Model[[]bool]) {
	k.history = append(k.history, evo.Summarize(m, k.fitness).Best)
}

func (k *Knapsack) fitness(o evo.Organism[[]bool]) float64 {
	weight, value := 0.0, 0.0
	for i, picked := range o.Genes {
		if picked {
			weight += k.items[i].Weight
			value += k.items[i].Value
		}
	}
	if weight > k.capacity {
		return 0
	}
	return value
}

// crossover splices the parents at a random point.
func (k *Knapsack) crossover(a, b evo.Organism[[]bool]) evo.Organism[[]bool] {
	genes := make([]bool, len(a.Genes))
	cut := k.rng.Intn(len(genes) + 1)
	copy(genes[:cut], a.Genes[:cut])
	copy(genes[cut:], b.Genes[cut:])
	return evo.Organism[[]bool]{Genes: genes, MutationChance: a.MutationChance}
}

// mutate flips each pick with the organism's mutation chance.
func (k *Knapsack) mutate(o evo.Organism[[]bool]) evo.Organism[[]bool] {
	for i := range o.Genes {
		if k.rng.Float64() < o.MutationChance {
			o.Genes[i] = !o.Genes[i]
		}
	}
	return o
}

func (k *Knapsack) Play()         { k.engine.Play() }
func (k *Knapsack) Pause()        { k.engine.Pause() }
func (k *Knapsack) Running() bool { return k.engine.Running() }

func (k *Knapsack) Reset() {
	k.engine.Reset()
	k.history = k.history[:0]
}

func (k *Knapsack) Generation() int    { return k.engine.Model().Generation }
func (k *Knapsack) Stats() evo.Stats   { return evo.Summarize(k.engine.Model(), k.fitness) }
func (k *Knapsack) History() []float64 { return k.history }

func (k *Knapsack) Done() bool {
	return k.engine.Model().Generation >= k.maxGen
}

// BestView lists the picked items of the best selection with a weight
// bar per item and load totals.
func (k *Knapsack) BestView(width int) string {
	best, ok := evo.Best(k.engine.Model(), k.fitness)
	if !ok {
		return ""
	}

	var b strings.Builder
	weight, value := 0.0, 0.0
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	for i, picked := range best.Genes {
		if !picked {
			continue
		}
		it := k.items[i]
		weight += it.Weight
		value += it.Value
		bar := strings.Repeat("█", int(it.Weight/10*float64(barWidth)))
		fmt.Fprintf(&b, "%-8s %6.1fkg %6.1fpt %s\n", it.Name, it.Weight, it.Value, bar)
	}
	fmt.Fprintf(&b, "load %.1f/%.1fkg  value %.1fpt\n", weight, k.capacity, value)
	return b.String()
}
