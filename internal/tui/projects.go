package tui

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/carousel"
	"github.com/Zachkp/portfolio/internal/catalog"
)

// ProjectSource lists projects behind a filter tab.
type ProjectSource interface {
	Projects(ctx context.Context, f catalog.Filter) ([]catalog.Project, error)
}

// projectsPane is the project grid: one uncontrolled slider per card and
// an optional gallery for the selected card.
type projectsPane struct {
	source  ProjectSource
	images  assets.Checker
	filter  catalog.Filter
	items   []catalog.Project
	sliders []*carousel.Carousel
	cursor  int
	gallery *carousel.Gallery
	err     error
}

func newProjectsPane(source ProjectSource, images assets.Checker) projectsPane {
	p := projectsPane{source: source, images: images, filter: catalog.All}
	p.load()
	return p
}

func (p *projectsPane) load() {
	items, err := p.source.Projects(context.Background(), p.filter)
	if err != nil {
		p.err = err
		return
	}
	p.err = nil
	p.items = items
	p.sliders = make([]*carousel.Carousel, len(items))
	for i, item := range items {
		// Uncontrolled never fails.
		c, _ := carousel.New(item.Screenshots, carousel.Uncontrolled{})
		assets.MarkMissing(p.images, item.Screenshots, c.ReportLoadError)
		p.sliders[i] = c
	}
	p.cursor = 0
	p.gallery = nil
}

func (p *projectsPane) cycleFilter() {
	for i, f := range catalog.Filters {
		if f == p.filter {
			p.filter = catalog.Filters[(i+1)%len(catalog.Filters)]
			break
		}
	}
	p.load()
}

func (p *projectsPane) selected() (catalog.Project, *carousel.Carousel, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return catalog.Project{}, nil, false
	}
	return p.items[p.cursor], p.sliders[p.cursor], true
}

func (p *projectsPane) open() {
	item, slider, ok := p.selected()
	if !ok {
		return
	}
	g, err := carousel.NewGallery(item.Screenshots, max(slider.CurrentDisplayIndex(), 0))
	if err != nil {
		p.err = err
		return
	}
	assets.MarkMissing(p.images, item.Screenshots, g.ReportLoadError)
	p.gallery = g
}

func (p *projectsPane) update(msg tea.KeyMsg, keys KeyMap) {
	if p.gallery != nil {
		p.updateGallery(msg, keys)
		return
	}
	switch {
	case key.Matches(msg, keys.Filter):
		p.cycleFilter()
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.PrevShot):
		if _, s, ok := p.selected(); ok {
			s.Previous()
		}
	case key.Matches(msg, keys.NextShot):
		if _, s, ok := p.selected(); ok {
			s.Next()
		}
	case key.Matches(msg, keys.Open):
		p.open()
	}
}

func (p *projectsPane) updateGallery(msg tea.KeyMsg, keys KeyMap) {
	if key.Matches(msg, keys.Thumb) {
		n := int(msg.String()[0] - '1')
		// Thumbnails past the end are ignored.
		_ = p.gallery.Select(n)
		return
	}
	if p.gallery.HandleKey(msg.String()) {
		p.gallery = nil
	}
}

func (p projectsPane) view(st Styles, width int) string {
	if p.gallery != nil {
		return p.viewGallery(st, width)
	}

	var b strings.Builder
	var tabs []string
	for _, f := range catalog.Filters {
		if f == p.filter {
			tabs = append(tabs, st.ActiveTab.Render(f.Label()))
		} else {
			tabs = append(tabs, st.Tab.Render(f.Label()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if p.err != nil {
		b.WriteString(st.Failure.Render("Could not load projects: " + p.err.Error()))
		return b.String()
	}
	if len(p.items) == 0 {
		b.WriteString(st.Muted.Render("No projects in this category yet."))
		return b.String()
	}

	cardWidth := max(width-4, 20)
	for i, item := range p.items {
		style := st.Card
		if i == p.cursor {
			style = st.ActiveCard
		}
		b.WriteString(style.Width(cardWidth).Render(p.card(st, item, p.sliders[i])))
		b.WriteString("\n")
	}
	return b.String()
}

func (p projectsPane) card(st Styles, item catalog.Project, s *carousel.Carousel) string {
	title := st.Title.UnsetMarginBottom().Render(item.Title)
	if item.Featured {
		title += " " + st.Badge.Render("★ Featured")
	}
	lines := []string{
		title + "  " + st.Muted.Render(item.Category.Label()),
		item.Description,
		st.Tech.Render(strings.Join(item.Tech, " · ")),
		slideLine(st, s),
	}
	return strings.Join(lines, "\n")
}

// slideLine renders the current screenshot of a slider as text.
func slideLine(st Styles, s *carousel.Carousel) string {
	if s.Len() == 0 {
		return st.Placeholder.Render("Screenshot coming soon")
	}
	cur := s.Current()
	label := path.Base(cur.Src)
	if cur.Placeholder {
		label = st.Placeholder.Render("Screenshot coming soon")
	}
	return fmt.Sprintf("◀ %s ▶  %d/%d", label, cur.Index+1, s.Len())
}

func (p projectsPane) viewGallery(st Styles, width int) string {
	item, _, _ := p.selected()
	g := p.gallery

	var b strings.Builder
	b.WriteString(st.Title.Render(item.Title + "  " + st.Muted.Render(item.Category.Label())))
	b.WriteString("\n")
	b.WriteString(slideLine(st, g.Slider()))
	b.WriteString("\n\n")

	var thumbs []string
	for _, t := range g.Thumbnails() {
		label := fmt.Sprintf("[%d]", t.Index+1)
		if t.Placeholder {
			label = fmt.Sprintf("[%d·]", t.Index+1)
		}
		if t.Active {
			label = st.ActiveThumb.Render(label)
		}
		thumbs = append(thumbs, label)
	}
	b.WriteString(strings.Join(thumbs, " "))
	if c := g.Counter(); c != "" {
		b.WriteString("  " + st.Muted.Render(c))
	}
	b.WriteString("\n\n")
	b.WriteString(item.Description)
	b.WriteString("\n")
	b.WriteString(st.Tech.Render(strings.Join(item.Tech, " · ")))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(item.GitHub))
	if item.Live != "" {
		b.WriteString("\n" + st.Muted.Render(item.Live))
	}
	return st.Modal.Width(max(width-6, 20)).Render(b.String())
}
