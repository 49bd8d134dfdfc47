package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

type stubSubmitter struct {
	err  error
	sent []contact.Message
}

func (s *stubSubmitter) Submit(_ context.Context, m contact.Message) error {
	s.sent = append(s.sent, m)
	return s.err
}

type missingAll struct{}

func (missingAll) Missing(string) bool { return true }

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	content, err := catalog.Default()
	require.NoError(t, err)
	store, err := catalog.Open(context.Background(), content)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	if opts.Timing == (typewriter.Timing{}) {
		opts.Timing = typewriter.Timing{Type: time.Millisecond, Delete: time.Millisecond, Pause: time.Millisecond}
	}
	return New(content, store, opts)
}

var specialKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+p":    tea.KeyCtrlP,
	"ctrl+s":    tea.KeyCtrlS,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys one by one and returns the model and the last command.
func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTypewriterTicks(t *testing.T) {
	m := newTestModel(t, Options{})
	require.NotNil(t, m.Init())

	for i := 0; i < 4; i++ {
		var cmd tea.Cmd
		m, cmd = update(m, typeTickMsg{gen: m.typeGen})
		require.NotNil(t, cmd)
	}
	assert.Equal(t, "Full", m.typer.Text())
	assert.Contains(t, m.View(), "Full")
}

func TestTypewriterStaleTicksIgnored(t *testing.T) {
	m := newTestModel(t, Options{})
	stale := m.typeGen

	m, _ = press(m, "tab")
	assert.Equal(t, sectionAbout, m.section())
	m, cmd := update(m, typeTickMsg{gen: stale})
	assert.Nil(t, cmd)
	assert.Empty(t, m.typer.Text())

	m, cmd = press(m, "shift+tab")
	assert.Equal(t, sectionHome, m.section())
	assert.NotNil(t, cmd, "returning home restarts the ticks")

	m, _ = update(m, typeTickMsg{gen: stale})
	assert.Empty(t, m.typer.Text(), "tick from before the restart is dropped")
	m, _ = update(m, typeTickMsg{gen: m.typeGen})
	assert.Equal(t, "F", m.typer.Text())
}

func TestSectionNavigation(t *testing.T) {
	m := newTestModel(t, Options{})
	require.Len(t, m.sections, 6)

	m, _ = press(m, "3")
	assert.Equal(t, sectionSkills, m.section())
	m, _ = press(m, "tab", "tab")
	assert.Equal(t, sectionServices, m.section())
	m, _ = press(m, "tab", "tab")
	assert.Equal(t, sectionHome, m.section(), "tab wraps around")
	m, _ = press(m, "shift+tab")
	assert.Equal(t, sectionContact, m.section())

	_, cmd := press(newTestModel(t, Options{}), "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestProjectFilterAndSlider(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(m, "4")
	require.Equal(t, sectionProjects, m.section())
	assert.Len(t, m.projects.items, 6)

	m, _ = press(m, "f")
	assert.Equal(t, catalog.WebOnly, m.projects.filter)
	assert.Len(t, m.projects.items, 4)
	m, _ = press(m, "f")
	assert.Len(t, m.projects.items, 2)
	assert.Equal(t, "fitness-tracker", m.projects.items[0].ID)
	m, _ = press(m, "f")
	assert.Equal(t, catalog.All, m.projects.filter)

	m, _ = press(m, "down", "l", "l")
	require.Equal(t, 1, m.projects.cursor)
	s := m.projects.sliders[1]
	assert.Equal(t, 0, s.CurrentDisplayIndex(), "task-manager has two screenshots and wraps")
	m, _ = press(m, "h")
	assert.Equal(t, 1, s.CurrentDisplayIndex())
	assert.Equal(t, 0, m.projects.sliders[0].CurrentDisplayIndex(), "other cards keep their own index")

	m, _ = press(m, "up", "up")
	assert.Equal(t, 0, m.projects.cursor)
	assert.Contains(t, m.View(), "1/3")
}

func TestGallery(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(m, "4", "l", "enter")
	g := m.projects.gallery
	require.NotNil(t, g)
	assert.Equal(t, 1, g.Index(), "opens on the card's screenshot")
	assert.Contains(t, m.View(), "2 of 3")

	m, _ = press(m, "right", "right")
	assert.Equal(t, 0, g.Index())
	m, _ = press(m, "left")
	assert.Equal(t, 2, g.Index())

	m, _ = press(m, "1")
	assert.Equal(t, 0, g.Index())
	assert.Equal(t, sectionProjects, m.section(), "digits pick thumbnails while the gallery is open")
	m, _ = press(m, "9")
	assert.Equal(t, 0, g.Index(), "missing thumbnail is ignored")

	m, _ = press(m, "esc")
	assert.Nil(t, m.projects.gallery)
	assert.True(t, g.Closed())
}

func TestGalleryPlaceholders(t *testing.T) {
	m := newTestModel(t, Options{Images: missingAll{}})
	m, _ = press(m, "4", "enter")
	require.NotNil(t, m.projects.gallery)
	for _, th := range m.projects.gallery.Thumbnails() {
		assert.True(t, th.Placeholder)
	}
	assert.Contains(t, m.View(), "Screenshot coming soon")
}

func TestContactFlow(t *testing.T) {
	sub := &stubSubmitter{}
	m := newTestModel(t, Options{Submitter: sub})
	m, _ = press(m, "6")
	require.Equal(t, sectionContact, m.section())

	m, _ = press(m, "q", "A", "d", "a")
	assert.Equal(t, sectionContact, m.section(), "q types while in the form")
	assert.Equal(t, "qAda", m.contact.inputs[fieldName].Value())

	m, cmd := press(m, "ctrl+s")
	assert.Nil(t, cmd)
	assert.Equal(t, contact.Idle, m.contact.form.Status())
	assert.NotEmpty(t, m.contact.form.FieldError("email"))
	assert.Contains(t, m.View(), "Email is required")

	m, _ = press(m, "ctrl+n", "a", "@", "b", ".", "c", "o")
	m, _ = press(m, "ctrl+n", "ctrl+n", "h", "i")
	assert.Equal(t, fieldMessage, m.contact.focus)

	m, cmd = press(m, "ctrl+s")
	require.NotNil(t, cmd)
	assert.Equal(t, contact.Sending, m.contact.form.Status())

	m, cmd = update(m, cmd())
	require.Len(t, sub.sent, 1)
	assert.Equal(t, "a@b.co", sub.sent[0].Email)
	assert.Equal(t, contact.Success, m.contact.form.Status())
	assert.NotNil(t, cmd, "success schedules a reset")
	assert.Empty(t, m.contact.inputs[fieldName].Value())
	assert.Contains(t, m.View(), "Message Sent!")

	m, _ = update(m, resetFormMsg{ticket: 1})
	assert.Equal(t, contact.Idle, m.contact.form.Status())

	_, cmd = press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestContactFailureKeepsInput(t *testing.T) {
	m := newTestModel(t, Options{Submitter: &stubSubmitter{err: errors.New("offline")}})
	m, _ = press(m, "6", "A", "d", "a", "ctrl+n", "a", "@", "b", ".", "c", "o", "ctrl+n", "ctrl+n", "h", "i")

	m, cmd := press(m, "ctrl+s")
	require.NotNil(t, cmd)
	m, cmd = update(m, cmd())
	assert.Nil(t, cmd)
	assert.Equal(t, contact.Failed, m.contact.form.Status())
	assert.Equal(t, "Ada", m.contact.inputs[fieldName].Value())
	assert.Contains(t, m.View(), "try again")
}
