// Package tui is the interactive terminal form: one question at a time, then
// the results screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khanglvm/gift-inventory/internal/render"
	"github.com/khanglvm/gift-inventory/internal/survey"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
)

// Model is the bubbletea model for one terminal session.
type Model struct {
	svc     *survey.Service
	nav     *survey.Navigator
	opts    render.Options
	prompts []string
	choices []survey.Choice

	current int // 0-based question on screen
	cursor  int // highlighted choice
	answers survey.Answers

	results  *survey.Results
	err      error
	quitting bool
}

// New creates a model positioned on the first question.
func New(svc *survey.Service, opts render.Options) Model {
	return Model{
		svc:     svc,
		nav:     survey.NewNavigator(),
		opts:    opts,
		prompts: svc.Questionnaire().Catalog.Prompts(),
		choices: svc.Scale().Choices(),
		answers: make(survey.Answers),
	}
}

// Run starts the form on the terminal and blocks until the user quits.
func Run(ctx context.Context, svc *survey.Service, opts render.Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Screen reports which screen the model is showing.
func (m Model) Screen() survey.Screen {
	return m.nav.Screen()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	if m.nav.Screen() == survey.ScreenResults {
		return m.updateResults(key)
	}
	return m.updateForm(key)
}

func (m Model) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "left", "backspace":
		m.move(m.current - 1)
	case "right", "tab":
		m.move(m.current + 1)
	case "1", "2", "3", "4", "5":
		i := int(key.String()[0] - '1')
		if i < len(m.choices) {
			m.cursor = i
			return m.choose()
		}
	case "enter", " ":
		return m.choose()
	}
	return m, nil
}

func (m Model) updateResults(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "b", "backspace":
		if err := m.nav.Back(); err != nil {
			m.err = err
			return m, nil
		}
		m.answers = make(survey.Answers)
		m.results = nil
		m.err = nil
		m.current = 0
		m.cursor = 0
	}
	return m, nil
}

// choose records the highlighted choice and advances. On the last question it
// submits the form.
func (m Model) choose() (tea.Model, tea.Cmd) {
	m.answers[m.current+1] = m.choices[m.cursor].Label
	m.err = nil

	if m.current < len(m.prompts)-1 {
		m.move(m.current + 1)
		return m, nil
	}
	return m.submit()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if _, err := m.svc.Submit(m.nav, m.answers); err != nil {
		m.err = err
		var inc *survey.IncompleteError
		if errors.As(err, &inc) && len(inc.Missing) > 0 {
			m.move(inc.Missing[0] - 1)
		}
		return m, nil
	}

	m.results, m.err = m.svc.Results()
	return m, nil
}

// move shows question i, restoring its answer as the cursor position.
func (m *Model) move(i int) {
	if i < 0 || i >= len(m.prompts) {
		return
	}
	m.current = i
	m.cursor = 0
	if label, ok := m.answers[i+1]; ok {
		for j, c := range m.choices {
			if c.Label == label {
				m.cursor = j
				break
			}
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting && m.nav.Screen() == survey.ScreenForm {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.svc.Questionnaire().Title))
	b.WriteString("\n\n")

	if m.nav.Screen() == survey.ScreenResults {
		m.viewResults(&b)
	} else {
		m.viewForm(&b)
	}
	return b.String()
}

func (m Model) viewForm(b *strings.Builder) {
	fmt.Fprintf(b, "Question %d of %d  (%d answered)\n", m.current+1, len(m.prompts), len(m.answers))
	b.WriteString(promptStyle.Render(m.prompts[m.current]))
	b.WriteString("\n\n")

	chosen := m.answers[m.current+1]
	for i, c := range m.choices {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		label := fmt.Sprintf("%d. %s", i+1, c.Label)
		if c.Label == chosen {
			label = selectedStyle.Render(label + " ✓")
		}
		b.WriteString(marker + label + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	help := "↑/↓ choose • enter select • ←/→ previous/next • esc quit"
	if m.current == len(m.prompts)-1 {
		help = "↑/↓ choose • enter submit • ← previous • esc quit"
	}
	b.WriteString("\n" + helpStyle.Render(help) + "\n")
}

func (m Model) viewResults(b *strings.Builder) {
	r := render.New(b)
	if m.err != nil {
		r.Error(m.err)
	} else if m.results != nil {
		r.Results(m.results, m.opts)
	}
	b.WriteString("\n" + helpStyle.Render("b back to the form • q quit") + "\n")
}
