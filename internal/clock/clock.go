// Package clock provides the one-shot scheduling primitive used by the
// animation engines, with a real implementation and a virtual one for tests.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already
	// fired or was stopped.
	Stop() bool
}

// Scheduler schedules one-shot delayed callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules on the runtime timer wheel.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Fake is a manually advanced Scheduler. Callbacks run synchronously inside
// Advance, on the caller's goroutine.
type Fake struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*fakeTimer
}

type fakeTimer struct {
	f   *Fake
	due time.Duration
	seq uint64
	fn  func()
}

// NewFake returns a Fake at virtual time zero.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{f: f, due: f.now + d, seq: f.seq, fn: fn}
	f.pending = append(f.pending, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	for i, p := range t.f.pending {
		if p == t {
			t.f.pending = append(t.f.pending[:i], t.f.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves virtual time forward by d, firing every timer that falls due
// in order. Timers scheduled by a callback fire too if they are due within
// the window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.popDue(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.now = next.due
		f.mu.Unlock()

		next.fn()
	}
}

// popDue removes and returns the earliest timer due at or before target.
// Callers hold f.mu.
func (f *Fake) popDue(target time.Duration) *fakeTimer {
	if len(f.pending) == 0 {
		return nil
	}
	sort.SliceStable(f.pending, func(i, j int) bool {
		if f.pending[i].due != f.pending[j].due {
			return f.pending[i].due < f.pending[j].due
		}
		return f.pending[i].seq < f.pending[j].seq
	})
	first := f.pending[0]
	if first.due > target {
		return nil
	}
	f.pending = f.pending[1:]
	return first
}

// Pending returns the number of scheduled, unfired timers.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Elapsed returns the virtual time advanced so far.
func (f *Fake) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}
