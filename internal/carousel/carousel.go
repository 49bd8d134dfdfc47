// Package carousel keeps the current slide of a fixed list of screenshots.
//
// A Carousel either owns its index (Uncontrolled) or defers it to an owner
// that receives change requests and applies them back (Controlled). The mode
// is chosen once in New. Carousels are driven from input handlers and are not
// safe for concurrent use.
package carousel

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
	ErrNoMode          = errors.New("carousel: mode is required")
	ErrNoOnChange      = errors.New("carousel: controlled mode needs OnChange")
	ErrNotControlled   = errors.New("carousel: carousel is not controlled")
)

// Direction is the orientation of the latest navigation. It only selects
// the slide-in animation.
type Direction int

const (
	Backward Direction = -1
	None     Direction = 0
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	}
	return "none"
}

// Mode selects who owns the index.
type Mode interface {
	mode()
}

// Uncontrolled carousels own their index, starting at the first item.
type Uncontrolled struct{}

// Controlled carousels display Index and report navigation to OnChange.
// The owner applies accepted changes with Sync.
type Controlled struct {
	Index    int
	OnChange func(index int, dir Direction)
}

func (Uncontrolled) mode() {}
func (Controlled) mode()   {}

// Slide describes how one index renders.
type Slide struct {
	Index       int
	Src         string
	Placeholder bool
}

type Carousel struct {
	items      []string
	controlled bool
	onChange   func(int, Direction)
	index      int
	direction  Direction
	failed     map[int]struct{}
	closed     bool
}

// New returns a carousel over a copy of items.
func New(items []string, mode Mode) (*Carousel, error) {
	c := &Carousel{
		items:  append([]string(nil), items...),
		failed: make(map[int]struct{}),
	}
	switch m := mode.(type) {
	case Uncontrolled:
	case Controlled:
		if m.OnChange == nil {
			return nil, ErrNoOnChange
		}
		if len(c.items) > 0 && !c.inRange(m.Index) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, m.Index, len(c.items))
		}
		c.controlled = true
		c.onChange = m.OnChange
		c.index = m.Index
	default:
		return nil, ErrNoMode
	}
	return c, nil
}

func (c *Carousel) inRange(i int) bool {
	return i >= 0 && i < len(c.items)
}

func (c *Carousel) Len() int             { return len(c.items) }
func (c *Carousel) Controlled() bool     { return c.controlled }
func (c *Carousel) Direction() Direction { return c.direction }

// CurrentDisplayIndex returns the index on screen: the owner's index in
// controlled mode, the carousel's own otherwise. It is -1 when there are no
// items.
func (c *Carousel) CurrentDisplayIndex() int {
	if len(c.items) == 0 {
		return -1
	}
	return c.index
}

// Next moves one slide forward, wrapping to the first.
func (c *Carousel) Next() { c.paginate(Forward) }

// Previous moves one slide back, wrapping to the last.
func (c *Carousel) Previous() { c.paginate(Backward) }

func (c *Carousel) paginate(dir Direction) {
	n := len(c.items)
	if n == 0 || c.closed {
		return
	}
	c.move((c.index+int(dir)+n)%n, dir)
}

// JumpTo selects slide i. Targets outside the list are refused and leave
// the carousel unchanged. Jumping to the current slide counts as Backward.
func (c *Carousel) JumpTo(i int) error {
	if !c.inRange(i) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.items))
	}
	if c.closed {
		return nil
	}
	dir := Backward
	if i > c.index {
		dir = Forward
	}
	c.move(i, dir)
	return nil
}

func (c *Carousel) move(i int, dir Direction) {
	c.direction = dir
	if c.controlled {
		c.onChange(i, dir)
		return
	}
	c.index = i
}

// Sync applies the owner's index to a controlled carousel.
func (c *Carousel) Sync(i int) error {
	if !c.controlled {
		return ErrNotControlled
	}
	if !c.inRange(i) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.items))
	}
	c.index = i
	return nil
}

// ReportLoadError remembers that slide i failed to load. It renders as a
// placeholder from then on.
func (c *Carousel) ReportLoadError(i int) {
	if !c.inRange(i) {
		return
	}
	c.failed[i] = struct{}{}
}

func (c *Carousel) Failed(i int) bool {
	_, ok := c.failed[i]
	return ok
}

// Slide returns the render decision for index i.
func (c *Carousel) Slide(i int) Slide {
	if !c.inRange(i) {
		return Slide{Index: i, Placeholder: true}
	}
	return Slide{Index: i, Src: c.items[i], Placeholder: c.Failed(i)}
}

// Current returns the slide on screen.
func (c *Carousel) Current() Slide {
	return c.Slide(c.CurrentDisplayIndex())
}

// Close detaches the owner callback. Navigation on a closed carousel does
// nothing.
func (c *Carousel) Close() {
	c.closed = true
	c.onChange = nil
}
