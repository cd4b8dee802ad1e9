// Package problems bundles sample collaborators for the evolution
// engine. Each problem wires its own organism factory, fitness,
// crossover, and mutation callbacks into a typed [evo.Engine] and hides
// the generic parameter behind the [Session] interface so the CLI and
// TUI can drive any problem uniformly.
package problems

import "github.com/san-kum/evolab/internal/evo"

// Session is one live evolution run. Control methods mirror the engine;
// the rest is read access for display code.
type Session interface {
	Play()
	Pause()
	Reset()
	// Running reports whether the step loop is live. It turns false once
	// the problem's termination condition latches.
	Running() bool
	Generation() int
	// Stats summarizes the current population's fitness.
	Stats() evo.Stats
	// History returns the best fitness recorded at each stepped frame,
	// collected in the engine's per-frame hook.
	History() []float64
	// Done reports whether the termination condition holds for the
	// current model.
	Done() bool
	// BestView renders the current best organism for a terminal, width
	// columns wide.
	BestView(width int) string
}
