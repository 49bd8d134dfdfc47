package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every binding of the portfolio with its help text.
type KeyMap struct {
	// Global
	Quit        key.Binding
	ForceQuit   key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	JumpSection key.Binding

	// Projects
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	PrevShot key.Binding
	NextShot key.Binding
	Open     key.Binding

	// Gallery
	Left   key.Binding
	Right  key.Binding
	Thumb  key.Binding
	Escape key.Binding

	// Contact
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		JumpSection: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev project"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next project"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		PrevShot: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "prev screenshot"),
		),
		NextShot: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next screenshot"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gallery"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Thumb: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "thumbnail"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextField: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
	}
}

// helpKeys adapts the key map to the footer of the active context.
type helpKeys struct {
	short []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.short} }

func (k KeyMap) globalHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.JumpSection, k.Quit}
}

func (k KeyMap) projectsHelp() []key.Binding {
	return append([]key.Binding{k.Up, k.Down, k.Filter, k.PrevShot, k.NextShot, k.Open}, k.globalHelp()...)
}

func (k KeyMap) galleryHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Thumb, k.Escape, k.ForceQuit}
}

func (k KeyMap) contactHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.NextSection, k.ForceQuit}
}
