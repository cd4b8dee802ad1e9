package evo

import "time"

// Scheduler defers a function call. The engine uses it for exactly one
// purpose: enqueueing the next tick after the current one finishes, which
// keeps ticks strictly serialized regardless of the backing mechanism.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ManualScheduler is a Scheduler with explicitly advanced virtual time.
// Callbacks run synchronously inside Advance, on the caller's goroutine,
// so a test or a UI event loop can host engine ticks without any timer
// goroutines. Not safe for concurrent use.
type ManualScheduler struct {
	now     time.Duration
	pending []pendingCall
}

type pendingCall struct {
	at time.Duration
	fn func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc enqueues fn to run once virtual time passes now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, pendingCall{at: s.now + d, fn: fn})
}

// Advance moves virtual time forward by d, firing due callbacks in
// schedule order. A callback that re-schedules itself within the window
// fires again in the same call.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		idx := -1
		for i, p := range s.pending {
			if p.at <= target && (idx < 0 || p.at < s.pending[idx].at) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		p := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		s.now = p.at
		p.fn()
	}
	s.now = target
}

// Pending reports how many callbacks are queued.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}
