// Package form is a full screen alternative to the line by line questions
// for composing one diary entry.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/timeutil"
	"tableflip.dev/diary/pkg/tui/theme"
)

// ErrCancelled is returned by Run when the form is closed without saving.
var ErrCancelled = errors.New("entry cancelled")

type field int

const (
	fieldDate field = iota
	fieldBody
	fieldBoxA
	fieldBoxB
	fieldMood
	fieldCount
)

var labels = map[field]string{
	fieldDate: "Date",
	fieldBody: "Entry",
	fieldBoxA: "First side box",
	fieldBoxB: "Second side box",
	fieldMood: "Mood",
}

// Model collects the parts of an entry.
type Model struct {
	dates timeutil.Resolver
	theme theme.Theme

	focus  field
	inputs map[field]*textinput.Model
	// body holds the finished lines of the entry; the body input is the line
	// being typed.
	body  []string
	moods []mood.Mood
	mood  int

	width    int
	errorMsg string

	result    *entry.Entry
	cancelled bool
}

// New builds an empty form. Dates typed into it are read by dates.
func New(dates timeutil.Resolver) *Model {
	m := &Model{
		dates:  dates,
		theme:  theme.Default(),
		inputs: make(map[field]*textinput.Model),
		moods:  mood.All(),
	}
	for _, f := range []field{fieldDate, fieldBody, fieldBoxA, fieldBoxB} {
		ti := textinput.New()
		ti.Prompt = "> "
		m.inputs[f] = &ti
	}
	m.inputs[fieldDate].Placeholder = "today (dd/mm/yy)"
	m.inputs[fieldBody].Placeholder = "enter adds a line, an empty line moves on"
	m.inputs[fieldBoxA].Placeholder = "optional"
	m.inputs[fieldBoxB].Placeholder = "optional"
	for i, md := range m.moods {
		if md == mood.Fallback {
			m.mood = i
		}
	}
	return m
}

// SetDate prefills the date field.
func (m *Model) SetDate(date string) {
	m.inputs[fieldDate].SetValue(date)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputs[fieldDate].Focus(), textinput.Blink)
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for _, ti := range m.inputs {
			ti.SetWidth(clampInt(msg.Width-12, 20, 100))
		}
		return m, nil
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	ti, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.cancelled = true
		return tea.Quit, true
	case "ctrl+s":
		return m.submit(), true
	case "tab":
		return m.setFocus(m.focus + 1), true
	case "shift+tab":
		return m.setFocus(m.focus - 1), true
	case "up":
		if m.focus == fieldMood {
			if m.mood > 0 {
				m.mood--
			}
			return nil, true
		}
	case "down":
		if m.focus == fieldMood {
			if m.mood < len(m.moods)-1 {
				m.mood++
			}
			return nil, true
		}
	case "enter":
		switch m.focus {
		case fieldBody:
			line := m.inputs[fieldBody].Value()
			if strings.TrimSpace(line) == "" {
				return m.setFocus(fieldBoxA), true
			}
			m.body = append(m.body, line)
			m.inputs[fieldBody].SetValue("")
			return nil, true
		case fieldMood:
			return m.submit(), true
		default:
			return m.setFocus(m.focus + 1), true
		}
	case "backspace":
		// Backspace on an empty body line reopens the previous line.
		if m.focus == fieldBody && m.inputs[fieldBody].Value() == "" && len(m.body) > 0 {
			last := m.body[len(m.body)-1]
			m.body = m.body[:len(m.body)-1]
			m.inputs[fieldBody].SetValue(last)
			m.inputs[fieldBody].CursorEnd()
			return nil, true
		}
	}
	return nil, false
}

func (m *Model) setFocus(f field) tea.Cmd {
	f = (f + fieldCount) % fieldCount
	if ti, ok := m.inputs[m.focus]; ok {
		ti.Blur()
	}
	m.focus = f
	if ti, ok := m.inputs[f]; ok {
		return ti.Focus()
	}
	return nil
}

// submit validates the form and quits with a result, or points at the field
// that needs fixing.
func (m *Model) submit() tea.Cmd {
	on, err := m.dates.Resolve(m.inputs[fieldDate].Value())
	if err != nil {
		m.errorMsg = err.Error()
		return m.setFocus(fieldDate)
	}
	lines := append([]string(nil), m.body...)
	if pending := m.inputs[fieldBody].Value(); strings.TrimSpace(pending) != "" {
		lines = append(lines, pending)
	}
	body := strings.Join(lines, "\n")
	if strings.TrimSpace(body) == "" {
		m.errorMsg = "the entry is empty"
		return m.setFocus(fieldBody)
	}

	e := entry.New(on, body, m.moods[m.mood])
	e.BoxA = strings.TrimSpace(m.inputs[fieldBoxA].Value())
	e.BoxB = strings.TrimSpace(m.inputs[fieldBoxB].Value())
	m.result = e
	m.errorMsg = ""
	return tea.Quit
}

// Result is the composed entry, nil until the form was submitted.
func (m *Model) Result() *entry.Entry {
	return m.result
}

// Cancelled reports whether the form was closed without saving.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// View renders the form.
func (m *Model) View() string {
	t := m.theme
	sections := []string{t.Title.Render("New diary entry"), ""}

	sections = append(sections, m.label(fieldDate), m.inputs[fieldDate].View(), "")

	sections = append(sections, m.label(fieldBody))
	for _, line := range m.body {
		sections = append(sections, t.Body.Render("  "+line))
	}
	sections = append(sections, m.inputs[fieldBody].View(), "")

	boxes := []string{
		lipgloss.JoinVertical(lipgloss.Left, m.label(fieldBoxA), m.inputs[fieldBoxA].View()),
		lipgloss.JoinVertical(lipgloss.Left, m.label(fieldBoxB), m.inputs[fieldBoxB].View()),
	}
	if m.width >= 80 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, t.Box.Render(boxes[0]), " ", t.Box.Render(boxes[1])))
	} else {
		sections = append(sections, t.Box.Render(boxes[0]), t.Box.Render(boxes[1]))
	}
	sections = append(sections, "")

	sections = append(sections, m.label(fieldMood))
	for i, md := range m.moods {
		g := md.Glyph()
		row := fmt.Sprintf(" %d %s %s ", g.Code, g.Emoji, g.Label)
		if i == m.mood {
			sections = append(sections, t.Chosen.Render(row))
		} else {
			sections = append(sections, t.Mood.Render(row))
		}
	}
	sections = append(sections, "")

	if m.errorMsg != "" {
		sections = append(sections, t.Error.Render(m.errorMsg))
	}
	sections = append(sections, t.Help.Render("tab/shift+tab move  ↑/↓ mood  ctrl+s save  esc cancel"))

	return t.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) label(f field) string {
	if f == m.focus {
		return m.theme.Focused.Render("▸ " + labels[f])
	}
	return m.theme.Label.Render("  " + labels[f])
}

// Run shows the form until it is submitted or cancelled.
func Run(m *Model) (*entry.Entry, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	if m.cancelled || m.result == nil {
		return nil, ErrCancelled
	}
	return m.result, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
