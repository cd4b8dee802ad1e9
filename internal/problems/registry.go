package problems

import (
	"fmt"
	"sort"

	"github.com/san-kum/evolab/internal/config"
	"github.com/san-kum/evolab/internal/evo"
)

// Factory builds a session for one problem from a config and the
// scheduler that will host its ticks.
type Factory func(cfg *config.Config, sched evo.Scheduler) Session

type Registry struct {
	problems map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]Factory)}

	r.problems["knapsack"] = func(cfg *config.Config, sched evo.Scheduler) Session {
		return NewKnapsack(cfg, sched)
	}
	r.problems["colors"] = func(cfg *config.Config, sched evo.Scheduler) Session {
		return NewColors(cfg, sched)
	}

	return r
}

func (r *Registry) New(name string, cfg *config.Config, sched evo.Scheduler) (Session, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(cfg, sched), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
