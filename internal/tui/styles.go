package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorPurple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
)

// Styles are built from one renderer so SSH sessions get the color profile
// of their own terminal.
type Styles struct {
	Brand       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Typed       lipgloss.Style
	Card        lipgloss.Style
	ActiveCard  lipgloss.Style
	Badge       lipgloss.Style
	Tech        lipgloss.Style
	Placeholder lipgloss.Style
	Modal       lipgloss.Style
	ActiveThumb lipgloss.Style
	FieldError  lipgloss.Style
	Success     lipgloss.Style
	Failure     lipgloss.Style
	Column      lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Brand:       r.NewStyle().Bold(true).Foreground(ColorAccent),
		Tab:         r.NewStyle().Padding(0, 1).Foreground(ColorMuted),
		ActiveTab:   r.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(ColorAccent),
		Title:       r.NewStyle().Bold(true).MarginBottom(1),
		Muted:       r.NewStyle().Foreground(ColorMuted),
		Typed:       r.NewStyle().Bold(true).Foreground(ColorPurple),
		Card:        r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1),
		ActiveCard:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1),
		Badge:       r.NewStyle().Foreground(ColorPurple).Bold(true),
		Tech:        r.NewStyle().Foreground(ColorAccent),
		Placeholder: r.NewStyle().Foreground(ColorMuted).Italic(true),
		Modal:       r.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(ColorAccent).Padding(1, 2),
		ActiveThumb: r.NewStyle().Bold(true).Foreground(ColorAccent),
		FieldError:  r.NewStyle().Foreground(ColorRed),
		Success:     r.NewStyle().Bold(true).Foreground(ColorGreen),
		Failure:     r.NewStyle().Bold(true).Foreground(ColorRed),
		Column:      r.NewStyle().Width(22),
	}
}
