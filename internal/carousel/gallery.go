package carousel

import "fmt"

// Thumbnail is one entry of the gallery strip.
type Thumbnail struct {
	Index       int
	Src         string
	Active      bool
	Placeholder bool
}

// Gallery owns a shared index for the expanded view of a project: the large
// slider, the thumbnail strip and keyboard navigation all move the same
// index. The slider runs Controlled against it.
type Gallery struct {
	index     int
	direction Direction
	slider    *Carousel
	closed    bool
}

// NewGallery opens a gallery over items at index start.
func NewGallery(items []string, start int) (*Gallery, error) {
	g := &Gallery{index: start}
	slider, err := New(items, Controlled{Index: start, OnChange: g.apply})
	if err != nil {
		return nil, err
	}
	g.slider = slider
	if len(items) == 0 {
		g.index = 0
	}
	return g, nil
}

// apply is the single writer of the shared index.
func (g *Gallery) apply(i int, dir Direction) {
	if g.closed {
		return
	}
	g.index = i
	g.direction = dir
	// The slider validated i before proposing it.
	_ = g.slider.Sync(i)
}

func (g *Gallery) Slider() *Carousel    { return g.slider }
func (g *Gallery) Index() int           { return g.index }
func (g *Gallery) Direction() Direction { return g.direction }
func (g *Gallery) Len() int             { return g.slider.Len() }

// Next and Previous are the overlay buttons of the expanded view.
func (g *Gallery) Next()     { g.slider.Next() }
func (g *Gallery) Previous() { g.slider.Previous() }

// Select jumps to the thumbnail at i.
func (g *Gallery) Select(i int) error {
	return g.slider.JumpTo(i)
}

// HandleKey maps a key press to navigation. It reports true when the key
// closes the gallery. Both terminal and DOM key names are accepted.
func (g *Gallery) HandleKey(key string) bool {
	switch key {
	case "esc", "Escape":
		g.Close()
		return true
	case "right", "ArrowRight":
		g.Next()
	case "left", "ArrowLeft":
		g.Previous()
	}
	return false
}

// ReportLoadError marks screenshot i as broken for both the slider and the
// thumbnail strip.
func (g *Gallery) ReportLoadError(i int) {
	g.slider.ReportLoadError(i)
}

func (g *Gallery) Thumbnails() []Thumbnail {
	thumbs := make([]Thumbnail, g.slider.Len())
	for i := range thumbs {
		s := g.slider.Slide(i)
		thumbs[i] = Thumbnail{Index: i, Src: s.Src, Active: i == g.index, Placeholder: s.Placeholder}
	}
	return thumbs
}

// Counter renders the position as "2 of 3". It is empty when there are no
// screenshots.
func (g *Gallery) Counter() string {
	if g.slider.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d", g.index+1, g.slider.Len())
}

// Close tears the gallery down; its slider stops proposing changes.
func (g *Gallery) Close() {
	g.closed = true
	g.slider.Close()
}

func (g *Gallery) Closed() bool { return g.closed }
