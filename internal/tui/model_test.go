package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/render"
	"github.com/khanglvm/gift-inventory/internal/storage"
	"github.com/khanglvm/gift-inventory/internal/survey"
)

func newTestModel(t *testing.T) (Model, *storage.CSVStore) {
	t.Helper()
	cats, err := config.NewCategoryMap(3,
		config.Category{Name: "Teaching", Indices: []int{0, 1}},
		config.Category{Name: "Mercy", Indices: []int{2}},
	)
	require.NoError(t, err)

	q := &config.Questionnaire{
		Title:      "Gift Inventory",
		Catalog:    config.NewCatalog([]string{"I explain things", "I study", "I comfort people"}),
		Categories: cats,
	}
	store := storage.NewCSVStore(filepath.Join(t.TempDir(), "responses.csv"))
	svc, err := survey.NewService(q, store, nil)
	require.NoError(t, err)

	return New(svc, render.Options{}), store
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func TestFormShowsFirstQuestion(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Gift Inventory")
	assert.Contains(t, view, "Question 1 of 3")
	assert.Contains(t, view, "I explain things")
	assert.Contains(t, view, "1. Never/Rarely")
	assert.Contains(t, view, "5. Extremely")
	assert.Equal(t, survey.ScreenForm, m.Screen())
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, up)
	assert.Equal(t, 0, m.cursor, "cursor stops at the first choice")

	m = press(t, m, down, down, down, down, down, down)
	assert.Equal(t, 4, m.cursor, "cursor stops at the last choice")

	m = press(t, m, runes("k"))
	assert.Equal(t, 3, m.cursor)
}

func TestSubmitShowsResults(t *testing.T) {
	m, store := newTestModel(t)

	// Extremely, Very Much, Often.
	m = press(t, m, runes("5"), runes("4"), runes("3"))

	require.NoError(t, m.err)
	assert.Equal(t, survey.ScreenResults, m.Screen())

	history, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Equal(t, storage.History{{5, 4, 3}}, history)

	view := m.View()
	assert.Contains(t, view, "Scores by gift")
	assert.Contains(t, view, "Teaching")
	assert.Contains(t, view, "Totals across all respondents")
}

func TestEnterSelectsHighlightedChoice(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, down, enter, enter, down, down, enter)

	history, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Equal(t, storage.History{{2, 1, 3}}, history)
	assert.Equal(t, survey.ScreenResults, m.Screen())
}

func TestPreviousQuestionKeepsAnswer(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("4"))
	assert.Equal(t, 1, m.current)

	m = press(t, m, left)
	assert.Equal(t, 0, m.current)
	assert.Equal(t, 3, m.cursor, "cursor returns to the stored answer")
	assert.Contains(t, m.View(), "4. Often ✓")

	m = press(t, m, left)
	assert.Equal(t, 0, m.current, "cannot move before the first question")
}

func TestSkippedQuestionBlocksSubmit(t *testing.T) {
	m, store := newTestModel(t)

	// Skip question 2 and answer the last one.
	m = press(t, m, runes("1"), right, right, runes("1"))

	assert.Equal(t, survey.ScreenForm, m.Screen())
	var inc *survey.IncompleteError
	require.ErrorAs(t, m.err, &inc)
	assert.Equal(t, []int{2}, inc.Missing)
	assert.Equal(t, 1, m.current, "form jumps to the first unanswered question")
	assert.Contains(t, m.View(), "unanswered questions: 2")

	history, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestBackReturnsToFreshForm(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, runes("5"), runes("5"), runes("5"))
	require.Equal(t, survey.ScreenResults, m.Screen())

	m = press(t, m, runes("b"))
	assert.Equal(t, survey.ScreenForm, m.Screen())
	assert.Equal(t, 0, m.current)
	assert.Empty(t, m.answers)

	m = press(t, m, runes("1"), runes("1"), runes("1"))
	assert.Equal(t, survey.ScreenResults, m.Screen())

	history, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Equal(t, storage.History{{5, 5, 5}, {1, 1, 1}}, history)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestResultsShowStoreError(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, runes("5"), runes("5"), runes("5"))
	require.Equal(t, survey.ScreenResults, m.Screen())

	// Corrupt the file, go back and submit again.
	require.NoError(t, os.WriteFile(store.Path(), []byte("Q1,Q2,Q3\n5,x,5\n"), 0644))
	m = press(t, m, runes("b"), runes("1"), runes("1"), runes("1"))

	assert.Equal(t, survey.ScreenResults, m.Screen())
	assert.Contains(t, m.View(), "corrupt response file")
}
