package typewriter

import (
	"sync"

	"github.com/Zachkp/portfolio/internal/clock"
)

// Engine runs a Machine on its own, rescheduling a single one-shot timer
// after every tick. Engines are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	m        *Machine
	sched    clock.Scheduler
	onChange func(string)
	timer    clock.Timer
	gen      uint64
	started  bool
	stopped  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler replaces the real-time scheduler.
func WithScheduler(s clock.Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithOnChange registers a callback invoked with the new text whenever it
// changes. It runs with the engine locked and must not call back into the
// engine.
func WithOnChange(fn func(string)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// NewEngine returns a stopped engine. Call Start to begin the animation.
func NewEngine(words []string, timing Timing, opts ...Option) *Engine {
	e := &Engine{
		m:     NewMachine(words, timing),
		sched: clock.Real{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start schedules the first tick. It is a no-op when already started,
// after Stop, or when there are no words.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.stopped {
		return
	}
	e.started = true
	e.scheduleLocked()
}

// Stop cancels the pending tick. Once Stop returns the engine never changes
// again and never calls OnChange.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) scheduleLocked() {
	d, ok := e.m.Delay()
	if !ok {
		return
	}
	gen := e.gen
	e.timer = e.sched.AfterFunc(d, func() { e.tick(gen) })
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	// A callback that lost the race with Stop must not touch state.
	if e.stopped || gen != e.gen {
		return
	}
	e.timer = nil
	changed := e.m.Step()
	e.scheduleLocked()
	if changed && e.onChange != nil {
		e.onChange(e.m.Text())
	}
}

// Text returns the text as of the latest tick.
func (e *Engine) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Text()
}

func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Phase()
}

func (e *Engine) WordIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.WordIndex()
}

// Running reports whether a tick is pending.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer != nil
}
