package web

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/carousel"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
)

type pageView struct {
	Profile  catalog.Profile
	Nav      []catalog.NavLink
	Skills   []catalog.SkillGroup
	Services []catalog.Service
	Grid     gridView
	Form     formView
	Year     int
}

type tabView struct {
	Filter catalog.Filter
	Label  string
	Count  int
	Active bool
}

type cardView struct {
	Project catalog.Project
	Slider  slideView
}

type gridView struct {
	Filter catalog.Filter
	Tabs   []tabView
	Cards  []cardView
}

type dotView struct {
	Index  int
	Active bool
}

// slideView renders one slider. Endpoint and Target say where its buttons
// send navigation: the card itself, or the modal that owns the index.
type slideView struct {
	ID          string
	ProjectID   string
	Title       string
	Category    catalog.Category
	Endpoint    string
	Target      string
	Index       int
	Count       int
	Direction   string
	Src         string
	Alt         string
	Placeholder bool
	Dots        []dotView
}

func (v slideView) ShowNav() bool { return v.Count > 1 }

func (v slideView) Counter() string {
	if v.Count == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", v.Index+1, v.Count)
}

func newSlideView(p catalog.Project, c *carousel.Carousel, id, endpoint, target string) slideView {
	cur := c.Current()
	v := slideView{
		ID:          id,
		ProjectID:   p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Endpoint:    endpoint,
		Target:      target,
		Index:       c.CurrentDisplayIndex(),
		Count:       c.Len(),
		Direction:   c.Direction().String(),
		Src:         cur.Src,
		Alt:         fmt.Sprintf("%s screenshot %d", p.Title, cur.Index+1),
		Placeholder: cur.Placeholder,
	}
	for i := 0; i < c.Len(); i++ {
		v.Dots = append(v.Dots, dotView{Index: i, Active: i == v.Index})
	}
	return v
}

type modalView struct {
	Project catalog.Project
	Slider  slideView
	Thumbs  []carousel.Thumbnail
	Counter string
}

type formView struct {
	Message contact.Message
	Errors  map[string]string
	Email   string
}

type resultView struct {
	Text string
}
