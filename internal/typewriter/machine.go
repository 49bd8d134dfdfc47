// Package typewriter animates a rotating list of phrases one character at a
// time: type the phrase, hold it, delete it, move to the next.
package typewriter

import "time"

// Phase is the mode of the machine between two ticks.
type Phase int

const (
	Typing Phase = iota
	Pausing
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Deleting:
		return "deleting"
	}
	return "unknown"
}

// Timing holds the delay associated with each phase.
type Timing struct {
	Type   time.Duration
	Delete time.Duration
	Pause  time.Duration
}

// DefaultTiming matches the hero banner of the site.
var DefaultTiming = Timing{
	Type:   90 * time.Millisecond,
	Delete: 45 * time.Millisecond,
	Pause:  2200 * time.Millisecond,
}

// Machine is the transition table of the animation. It has no notion of
// time beyond reporting how long the current phase waits; callers decide
// when to Step. The zero value is not usable, use NewMachine.
type Machine struct {
	words     [][]rune
	timing    Timing
	wordIndex int
	charIndex int
	phase     Phase
}

// NewMachine returns a machine in the Typing phase at the start of the
// first word. The words slice is copied.
func NewMachine(words []string, timing Timing) *Machine {
	m := &Machine{
		words:  make([][]rune, len(words)),
		timing: timing,
		phase:  Typing,
	}
	for i, w := range words {
		m.words[i] = []rune(w)
	}
	m.settle()
	return m
}

func (m *Machine) current() []rune {
	return m.words[m.wordIndex]
}

// Text returns the visible prefix of the current word.
func (m *Machine) Text() string {
	if len(m.words) == 0 {
		return ""
	}
	return string(m.current()[:m.charIndex])
}

func (m *Machine) Phase() Phase   { return m.phase }
func (m *Machine) WordIndex() int { return m.wordIndex }
func (m *Machine) CharIndex() int { return m.charIndex }
func (m *Machine) Len() int       { return len(m.words) }
func (m *Machine) Timing() Timing { return m.timing }

// Word returns the full current word.
func (m *Machine) Word() string {
	if len(m.words) == 0 {
		return ""
	}
	return string(m.current())
}

// Delay reports how long the current phase waits before the next Step.
// It returns false when there is nothing to animate.
func (m *Machine) Delay() (time.Duration, bool) {
	if len(m.words) == 0 {
		return 0, false
	}
	switch m.phase {
	case Pausing:
		return m.timing.Pause, true
	case Deleting:
		return m.timing.Delete, true
	default:
		return m.timing.Type, true
	}
}

// Step applies one timed transition and reports whether Text changed.
// Typing and deleting ticks change the text by exactly one character; the
// pause tick only flips the phase.
func (m *Machine) Step() bool {
	if len(m.words) == 0 {
		return false
	}
	changed := false
	switch m.phase {
	case Typing:
		m.charIndex++
		changed = true
	case Pausing:
		m.phase = Deleting
	case Deleting:
		m.charIndex--
		changed = true
	}
	m.settle()
	return changed
}

// settle performs the untimed transitions: a fully typed word starts its
// pause and a fully deleted word hands over to the next one.
func (m *Machine) settle() {
	if len(m.words) == 0 {
		return
	}
	if m.phase == Deleting && m.charIndex == 0 {
		m.wordIndex = (m.wordIndex + 1) % len(m.words)
		m.phase = Typing
	}
	if m.phase == Typing && m.charIndex == len(m.current()) {
		m.phase = Pausing
	}
}
