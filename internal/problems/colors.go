package problems

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/evolab/internal/config"
	"github.com/san-kum/evolab/internal/evo"
)

// RGB is one swatch with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// Hex renders the swatch as #rrggbb.
func (c RGB) Hex() string {
	to := func(v float64) int {
		return int(math.Round(clamp01(v) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", to(c.R), to(c.G), to(c.B))
}

// Hue returns the HSV hue in degrees, 0 for grays.
func (c RGB) Hue() float64 {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	d := max - min
	if d == 0 {
		return 0
	}
	var h float64
	switch max {
	case c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

func (c RGB) lightness() float64 {
	return (math.Max(c.R, math.Max(c.G, c.B)) + math.Min(c.R, math.Min(c.G, c.B))) / 2
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Colors evolves a palette toward a target hue with spread-out
// lightness: swatches should agree on hue but not collapse into one
// shade.
type Colors struct {
	target  float64
	maxGen  int
	chance  float64
	rng     *rand.Rand
	engine  *evo.Engine[[]RGB]
	history []float64
}

func NewColors(cfg *config.Config, sched evo.Scheduler) *Colors {
	c := &Colors{
		target: cfg.Colors.TargetHue,
		maxGen: cfg.MaxGenerations,
		chance: cfg.MutationChance,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	swatches := cfg.Colors.Swatches

	cb := evo.Callbacks[[]RGB]{
		CreateOrganism: func() evo.Organism[[]RGB] {
			genes := make([]RGB, swatches)
			for i := range genes {
				genes[i] = RGB{c.rng.Float64(), c.rng.Float64(), c.rng.Float64()}
			}
			return evo.Organism[[]RGB]{Genes: genes, MutationChance: c.chance}
		},
		Step:                     c.step,
		Fitness:                  c.fitness,
		Crossover:                c.crossover,
		Mutate:                   c.mutate,
		ShouldTerminate:          func(m *evo.Model[[]RGB]) bool { return m.Generation >= c.maxGen },
		ShouldProgressGeneration: func(*evo.Model[[]RGB]) bool { return true },
		CloneGenes: func(g []RGB) []RGB {
			out := make([]RGB, len(g))
			copy(out, g)
			return out
		},
	}
	c.engine = evo.New(cb, evo.Config{
		PopulationSize: cfg.PopulationSize,
		FrameDelay:     cfg.FrameDelay(),
		Scheduler:      sched,
	})
	return c
}

func (c *Colors) step(m *evo.Model[[]RGB]) {
	c.history = append(c.history, evo.Summarize(m, c.fitness).Best)
}

// fitness rewards hue agreement with the target and a wide lightness
// range across the palette. Each swatch contributes up to 1 for hue;
// the spread bonus contributes up to 1 for the whole palette.
func (c *Colors) fitness(o evo.Organism[[]RGB]) float64 {
	if len(o.Genes) == 0 {
		return 0
	}
	score := 0.0
	lo, hi := 1.0, 0.0
	for _, sw := range o.Genes {
		score += 1 - hueDistance(sw.Hue(), c.target)/180
		l := sw.lightness()
		lo = math.Min(lo, l)
		hi = math.Max(hi, l)
	}
	return score + (hi - lo)
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// crossover picks each swatch from either parent with equal odds.
func (c *Colors) crossover(a, b evo.Organism[[]RGB]) evo.Organism[[]RGB] {
	genes := make([]RGB, len(a.Genes))
	for i := range genes {
		if c.rng.Float64() < 0.5 {
			genes[i] = a.Genes[i]
		} else {
			genes[i] = b.Genes[i]
		}
	}
	return evo.Organism[[]RGB]{Genes: genes, MutationChance: a.MutationChance}
}

// mutate jitters each channel of a swatch with the organism's mutation
// chance.
func (c *Colors) mutate(o evo.Organism[[]RGB]) evo.Organism[[]RGB] {
	for i := range o.Genes {
		if c.rng.Float64() >= o.MutationChance {
			continue
		}
		o.Genes[i].R = clamp01(o.Genes[i].R + (c.rng.Float64()-0.5)*0.3)
		o.Genes[i].G = clamp01(o.Genes[i].G + (c.rng.Float64()-0.5)*0.3)
		o.Genes[i].B = clamp01(o.Genes[i].B + (c.rng.Float64()-0.5)*0.3)
	}
	return o
}

func (c *Colors) Play()         { c.engine.Play() }
func (c *Colors) Pause()        { c.engine.Pause() }
func (c *Colors) Running() bool { return c.engine.Running() }

func (c *Colors) Reset() {
	c.engine.Reset()
	c.history = c.history[:0]
}

func (c *Colors) Generation() int    { return c.engine.Model().Generation }
func (c *Colors) Stats() evo.Stats   { return evo.Summarize(c.engine.Model(), c.fitness) }
func (c *Colors) History() []float64 { return c.history }

func (c *Colors) Done() bool {
	return c.engine.Model().Generation >= c.maxGen
}

// BestView renders the best palette as colored blocks with hex labels.
func (c *Colors) BestView(width int) string {
	best, ok := evo.Best(c.engine.Model(), c.fitness)
	if !ok {
		return ""
	}
	block := width/len(best.Genes) - 9
	if block < 2 {
		block = 2
	}
	var swatches, labels []string
	for _, sw := range best.Genes {
		hex := sw.Hex()
		style := lipgloss.NewStyle().Background(lipgloss.Color(hex))
		swatches = append(swatches, style.Render(strings.Repeat(" ", block)))
		labels = append(labels, fmt.Sprintf("%-*s", block, hex))
	}
	return strings.Join(swatches, " ") + "\n" + strings.Join(labels, " ") + "\n"
}
