package evo

import (
	"sync"
	"time"
)

// Engine owns a Model and advances it with a cooperative step loop. It
// has two states, idle and running, and three control operations: Play,
// Pause, and Reset. Construction never starts the loop.
type Engine[G any] struct {
	cb      Callbacks[G]
	delay   time.Duration
	sched   Scheduler
	produce func(*Model[G]) *Model[G]

	mu      sync.Mutex
	model   *Model[G]
	running bool
}

// New constructs an engine and its initial model: generation zero and a
// population filled by PopulationSize calls to cb.CreateOrganism, in
// order. Callbacks are not validated; a missing one fails at first use.
func New[G any](cb Callbacks[G], cfg Config) *Engine[G] {
	if cfg.PopulationSize <= 0 {
		cfg.PopulationSize = DefaultPopulationSize
	}
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = DefaultFrameDelay
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = timerScheduler{}
	}
	e := &Engine[G]{
		cb:    cb,
		delay: cfg.FrameDelay,
		sched: cfg.Scheduler,
	}
	// The default strategy needs the callbacks, so it is built after they
	// are assigned rather than capturing a half-constructed engine.
	e.produce = cb.ProduceNextGeneration
	if e.produce == nil {
		e.produce = func(m *Model[G]) *Model[G] {
			return NextGeneration(m, e.cb)
		}
	}
	e.model = newModel(cfg.PopulationSize, cb.CreateOrganism)
	return e
}

func newModel[G any](size int, create func() Organism[G]) *Model[G] {
	pop := make([]Organism[G], size)
	for i := range pop {
		pop[i] = create()
	}
	return &Model[G]{PopulationSize: size, Population: pop}
}

// Model returns the current run state. The engine guarantees internal
// consistency (population length equals PopulationSize) whenever the Step
// hook fires and at all times while idle. Callers must not retain the
// model across ticks: reproduction replaces it wholesale.
func (e *Engine[G]) Model() *Model[G] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.model
}

// Running reports whether the step loop is live.
func (e *Engine[G]) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Play moves the engine into the running state and schedules one step.
// Calling Play while already running is a no-op, which preserves the
// single-in-flight-tick guarantee.
func (e *Engine[G]) Play() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()
	e.sched.AfterFunc(e.delay, e.tick)
}

// Pause moves the engine into the idle state. It is lazy: an already
// scheduled step still fires, observes the idle state, and exits without
// side effects. Pausing while idle is a no-op.
func (e *Engine[G]) Pause() {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

// Reset returns the model to its just-constructed form: generation zero
// and a freshly created population of the same size. The running state is
// left untouched.
func (e *Engine[G]) Reset() {
	size := e.Model().PopulationSize
	fresh := newModel(size, e.cb.CreateOrganism)
	e.mu.Lock()
	e.model = fresh
	e.mu.Unlock()
}

// tick is the step algorithm, invoked once per scheduled frame.
func (e *Engine[G]) tick() {
	m := e.Model()

	// Termination is a soft latch: the model is left as-is and Play can
	// restart the loop later.
	if e.cb.ShouldTerminate(m) {
		e.Pause()
	}

	// Sole exit point of the loop. A tick that fires after Pause lands
	// here and does not reschedule.
	if !e.Running() {
		return
	}

	// Advance the generation before the per-frame hook so the hook always
	// observes the generation about to be stepped.
	if e.cb.ShouldProgressGeneration(m) {
		m = e.produce(m)
		e.mu.Lock()
		e.model = m
		e.mu.Unlock()
	}

	if e.Running() {
		e.cb.Step(m)
		e.sched.AfterFunc(e.delay, e.tick)
	}
}
