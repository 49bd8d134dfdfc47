// Package tui renders the portfolio as a bubbletea program, locally or over
// SSH.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

const (
	sectionHome     = "hero"
	sectionAbout    = "about"
	sectionSkills   = "tech-stack"
	sectionProjects = "projects"
	sectionServices = "services"
	sectionContact  = "contact"
)

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Renderer  *lipgloss.Renderer
	Timing    typewriter.Timing
	Images    assets.Checker
	Submitter contact.Submitter
	Width     int
	Height    int
}

// typeTickMsg advances the hero typewriter. Ticks of an older generation
// are dropped.
type typeTickMsg struct {
	gen int
}

// Model is the root of the terminal portfolio.
type Model struct {
	content  *catalog.Content
	keys     KeyMap
	help     help.Model
	styles   Styles
	sections []catalog.NavLink
	active   int

	typer   *typewriter.Machine
	typeGen int

	projects projectsPane
	contact  contactPane

	width  int
	height int
}

// New builds the model over content. Projects are listed through source so
// filters match the web site.
func New(content *catalog.Content, source ProjectSource, opts Options) Model {
	if opts.Timing == (typewriter.Timing{}) {
		opts.Timing = typewriter.DefaultTiming
	}
	if opts.Images == nil {
		opts.Images = assets.NoopProbe{}
	}
	if opts.Submitter == nil {
		opts.Submitter = contact.Simulated{Delay: contact.DefaultDelay}
	}
	if opts.Width == 0 {
		opts.Width = 80
	}

	sections := append([]catalog.NavLink{{Label: "Home", Section: sectionHome}}, content.Nav...)
	h := help.New()
	h.Width = opts.Width

	return Model{
		content:  content,
		keys:     DefaultKeyMap(),
		help:     h,
		styles:   NewStyles(opts.Renderer),
		sections: sections,
		typer:    typewriter.NewMachine(content.Profile.Roles, opts.Timing),
		projects: newProjectsPane(source, opts.Images),
		contact:  newContactPane(opts.Submitter),
		width:    opts.Width,
		height:   opts.Height,
	}
}

func (m Model) Init() tea.Cmd {
	return m.typeTick()
}

func (m Model) section() string {
	return m.sections[m.active].Section
}

func (m Model) typeTick() tea.Cmd {
	if m.section() != sectionHome {
		return nil
	}
	d, ok := m.typer.Delay()
	if !ok {
		return nil
	}
	gen := m.typeGen
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{gen: gen} })
}

// setSection switches the visible section. The typewriter only ticks while
// Home is shown and the contact form only has focus while Contact is.
func (m *Model) setSection(i int) tea.Cmd {
	if i == m.active || i < 0 || i >= len(m.sections) {
		return nil
	}
	m.active = i
	m.typeGen++

	switch m.section() {
	case sectionHome:
		m.contact.blur()
		return m.typeTick()
	case sectionContact:
		return m.contact.focusCmd()
	}
	m.contact.blur()
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case typeTickMsg:
		if msg.gen != m.typeGen {
			return m, nil
		}
		m.typer.Step()
		return m, m.typeTick()

	case submitDoneMsg, resetFormMsg:
		return m, m.contact.update(msg, m.keys)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.section() == sectionContact {
		return m, m.contact.update(msg, m.keys)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	n := len(m.sections)
	switch {
	case key.Matches(msg, m.keys.NextSection):
		return m, m.setSection((m.active + 1) % n)
	case key.Matches(msg, m.keys.PrevSection):
		return m, m.setSection((m.active + n - 1) % n)
	}

	if m.section() == sectionContact {
		return m, m.contact.update(msg, m.keys)
	}
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.section() == sectionProjects && m.projects.gallery != nil {
		m.projects.update(msg, m.keys)
		return m, nil
	}
	if key.Matches(msg, m.keys.JumpSection) {
		return m, m.setSection(int(msg.String()[0] - '1'))
	}
	if m.section() == sectionProjects {
		m.projects.update(msg, m.keys)
	}
	return m, nil
}

func (m Model) View() string {
	st := m.styles
	var b strings.Builder

	tabs := []string{st.Brand.Render(m.content.Profile.Brand)}
	for i, s := range m.sections {
		label := fmt.Sprintf("%d %s", i+1, s.Label)
		if i == m.active {
			tabs = append(tabs, st.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, st.Tab.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.body())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(helpKeys{short: m.helpBindings()}))
	return b.String()
}

func (m Model) helpBindings() []key.Binding {
	switch m.section() {
	case sectionProjects:
		if m.projects.gallery != nil {
			return m.keys.galleryHelp()
		}
		return m.keys.projectsHelp()
	case sectionContact:
		return m.keys.contactHelp()
	}
	return m.keys.globalHelp()
}

func (m Model) body() string {
	st := m.styles
	p := m.content.Profile

	switch m.section() {
	case sectionHome:
		return strings.Join([]string{
			st.Title.Render(p.Name),
			st.Typed.Render(m.typer.Text()) + st.Muted.Render("|"),
			"",
			st.Muted.Render(p.Availability),
		}, "\n")

	case sectionAbout:
		lines := []string{st.Title.Render("About"), p.About, ""}
		for _, c := range p.Contacts {
			lines = append(lines, st.Muted.Render(c.Label+": ")+c.Value)
		}
		return strings.Join(lines, "\n")

	case sectionSkills:
		var cols []string
		for _, g := range m.content.Skills {
			col := st.Title.Render(g.Label) + "\n" + st.Tech.Render(strings.Join(g.Techs, "\n"))
			cols = append(cols, st.Column.Render(col))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	case sectionProjects:
		return m.projects.view(st, m.width)

	case sectionServices:
		var lines []string
		for _, s := range m.content.Services {
			lines = append(lines, st.Title.UnsetMarginBottom().Render(s.Title), s.Description)
			for _, f := range s.Features {
				lines = append(lines, st.Muted.Render("  • "+f))
			}
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")

	case sectionContact:
		return st.Title.Render("Let's Work Together") + "\n" + m.contact.view(st, m.email())
	}
	return ""
}

func (m Model) email() string {
	for _, c := range m.content.Profile.Contacts {
		if addr, ok := strings.CutPrefix(c.Href, "mailto:"); ok {
			return addr
		}
	}
	return ""
}
