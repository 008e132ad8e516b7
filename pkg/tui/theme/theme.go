package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the entry form.
type Theme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	// Label is a field heading; Focused is the heading of the active field.
	Label   lipgloss.Style
	Focused lipgloss.Style
	Body    lipgloss.Style
	Box     lipgloss.Style
	Mood    lipgloss.Style
	Chosen  lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	mood := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	return Theme{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   label,
		Focused: label.Foreground(lipgloss.Color("212")).Bold(true),
		Body:    lipgloss.NewStyle(),
		// Side boxes are red framed yellow boxes in the typeset diary.
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("1")).
			Foreground(lipgloss.Color("3")).
			Padding(0, 1),
		Mood:   mood,
		Chosen: mood.Foreground(lipgloss.Color("212")).Reverse(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
