package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/settings/internal/settings"
	"github.com/idilsaglam/settings/internal/store"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func send(t *testing.T, m modelTUI, msgs ...tea.Msg) modelTUI {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(modelTUI)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m modelTUI, s string) modelTUI {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func newTestModel() (modelTUI, *settings.Screen) {
	screen := settings.New(store.Seed(store.DefaultSections()))
	return newModel(screen), screen
}

func titlesOf(m modelTUI) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(row).item.Title())
	}
	return out
}

func TestFlattenShowsEveryRow(t *testing.T) {
	m, _ := newTestModel()
	assert.Equal(t, []string{"General", "About", "Privacy and Security", "Health"}, titlesOf(m))
	assert.True(t, m.list.Items()[0].(row).lead)
	assert.False(t, m.list.Items()[1].(row).lead)
}

func TestToggleCollapsesSection(t *testing.T) {
	m, _ := newTestModel()
	m = send(t, m, enter)
	assert.Equal(t, []string{"General", "Privacy and Security", "Health"}, titlesOf(m))

	m = send(t, m, enter)
	assert.Equal(t, []string{"General", "About", "Privacy and Security", "Health"}, titlesOf(m))
}

func TestAddSectionPrompt(t *testing.T) {
	m, screen := newTestModel()
	m = send(t, m, runes("a"))
	require.Equal(t, modePrompt, m.mode)
	assert.Equal(t, "New section", m.prompt.title)

	// Empty title keeps the prompt open.
	m = send(t, m, enter)
	assert.Equal(t, modePrompt, m.mode)
	assert.Equal(t, "Title cannot be empty", m.prompt.err)

	m = typeText(t, m, "Wi-Fi")
	assert.Empty(t, m.prompt.err)
	m = send(t, m, enter)

	assert.Equal(t, modeBrowse, m.mode)
	secs := screen.Render()
	require.Len(t, secs, 3)
	assert.Equal(t, "Wi-Fi", secs[2].Title())

	r, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "Wi-Fi", r.item.Title())
	assert.True(t, r.fresh)
}

func TestAddItemPromptTargetsSelectedSection(t *testing.T) {
	m, screen := newTestModel()
	m = send(t, m, down, down) // Privacy and Security
	m = send(t, m, runes("i"))
	require.Equal(t, 1, m.prompt.section)
	assert.Equal(t, "Place item in section", m.prompt.title)

	m = typeText(t, m, "Location")
	m = send(t, m, enter)

	rows := screen.Render()[1].Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Location", rows[2].Title())
}

func TestPromptEscCancels(t *testing.T) {
	m, screen := newTestModel()
	m = send(t, m, runes("a"))
	m = typeText(t, m, "qx")
	m = send(t, m, esc)

	assert.Equal(t, modeBrowse, m.mode)
	secs, _ := screen.Counts()
	assert.Equal(t, 2, secs)
}

func TestDeleteRequiresEditMode(t *testing.T) {
	m, screen := newTestModel()
	m = send(t, m, down, runes("d"))
	_, items := screen.Counts()
	assert.Equal(t, 4, items)

	m = send(t, m, runes("e"))
	assert.True(t, screen.Editing())
	m = send(t, m, runes("d"))
	_, items = screen.Counts()
	assert.Equal(t, 3, items)
	assert.Equal(t, []string{"General", "Privacy and Security", "Health"}, titlesOf(m))

	// Deleting a lead row removes the whole section.
	m = send(t, m, runes("d"))
	secs, items := screen.Counts()
	assert.Equal(t, 1, secs)
	assert.Equal(t, 1, items)
	assert.Equal(t, []string{"General"}, titlesOf(m))

	m = send(t, m, runes("e"))
	assert.False(t, screen.Editing())
}

func TestSearchFiltersLive(t *testing.T) {
	m, screen := newTestModel()
	m = send(t, m, runes("/"))
	require.Equal(t, modeSearch, m.mode)

	m = typeText(t, m, "heal")
	assert.Equal(t, "heal", screen.Query())
	assert.Equal(t, []string{"Health"}, titlesOf(m))
	assert.True(t, m.list.Items()[0].(row).lead)

	m = send(t, m, enter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "heal", screen.Query())

	// esc in browse mode clears the query before quitting.
	m = send(t, m, esc)
	assert.Equal(t, "", screen.Query())
	assert.Len(t, titlesOf(m), 4)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsEditLabel(t *testing.T) {
	m, _ := newTestModel()
	assert.Contains(t, m.View(), "[Edit]")
	m = send(t, m, runes("e"))
	assert.Contains(t, m.View(), "[Done]")
}

func TestDeleteFilteredSectionReportsHiddenRows(t *testing.T) {
	m, screen := newTestModel()
	m = send(t, m, runes("/"))
	m = typeText(t, m, "about")
	m = send(t, m, enter, runes("e"))
	require.Equal(t, []string{"About"}, titlesOf(m))

	m = send(t, m, runes("d"))
	secs, items := screen.Counts()
	assert.Equal(t, 1, secs)
	assert.Equal(t, 2, items)
	assert.Equal(t, "deleted section (2 rows)", m.status)
	assert.Contains(t, m.View(), "deleted section (2 rows)")
}

func TestCtrlCQuitsFromInputs(t *testing.T) {
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	for name, open := range map[string]string{"search": "/", "prompt": "a"} {
		t.Run(name, func(t *testing.T) {
			m, _ := newTestModel()
			m = send(t, m, runes(open))
			require.NotEqual(t, modeBrowse, m.mode)

			_, cmd := m.Update(ctrlC)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}
