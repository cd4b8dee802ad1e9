// Package evo implements a small generational genetic algorithm engine
// driven by a per-frame scheduler.
//
// The engine is an orchestrator, not an optimizer: all domain logic is
// supplied through [Callbacks] (organism factory, fitness, crossover,
// mutation, termination), and the engine only guarantees the lifecycle —
// a fixed-size population, a generation counter that advances by exactly
// one per reproduction, and a cooperative step loop with play/pause/reset
// semantics:
//
//	eng := evo.New(callbacks, evo.Config{PopulationSize: 50})
//	eng.Play()  // schedules ticks until ShouldTerminate fires or Pause is called
//
// # Step loop
//
// Each tick runs the same sequence: check termination, bail out if not
// running, optionally advance the generation via the reproduction
// strategy, invoke the per-frame Step hook, and reschedule. Ticks are
// strictly serialized — the next tick is enqueued only after the current
// one finishes, so at most one tick is ever in flight.
//
// Scheduling goes through the [Scheduler] interface. The default wraps
// [time.AfterFunc]; a [ManualScheduler] advances virtual time explicitly,
// which keeps tests deterministic and lets a UI event loop host the
// engine on its own thread.
//
// # Reproduction
//
// [NextGeneration] is the default strategy: rank by fitness, take the top
// two as fixed parents, rebuild the population from crossover, then
// mutate every offspring. Any function with the same contract (new model,
// generation+1, population length preserved) can replace it via
// Callbacks.ProduceNextGeneration.
package evo
