// Package tui is the interactive settings screen.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/settings/internal/diff"
	"github.com/idilsaglam/settings/internal/logging"
	"github.com/idilsaglam/settings/internal/model"
	"github.com/idilsaglam/settings/internal/settings"
	"github.com/idilsaglam/settings/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modePrompt
)

// prompt is the inline stand-in for the title dialog.
type prompt struct {
	title   string
	message string
	section int // displayed section for "add item"; -1 for a new section
	err     string
}

type modelTUI struct {
	screen *settings.Screen
	list   list.Model
	keys   keyMap

	mode      mode
	search    textinput.Model
	input     textinput.Model
	prompt    prompt
	collapsed map[string]bool

	status        string
	statusIsError bool

	width, height int
}

func newModel(screen *settings.Screen) modelTUI {
	keys := newKeyMap()

	l := list.New(nil, rowDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.AdditionalShortHelpKeys = keys.extra
	l.AdditionalFullHelpKeys = keys.extra
	// q is handled here so an open prompt can receive it as text.
	l.KeyMap.Quit.SetEnabled(false)
	// d deletes in edit mode, so it no longer pages.
	l.KeyMap.NextPage = key.NewBinding(
		key.WithKeys("right", "l", "pgdown", "f"),
		key.WithHelp("→/l/pgdn", "next page"),
	)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search"
	search.CharLimit = 100

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "(Required) Title"
	input.CharLimit = 200

	m := modelTUI{
		screen:    screen,
		list:      l,
		keys:      keys,
		search:    search,
		input:     input,
		collapsed: map[string]bool{},
		width:     80,
		height:    24,
	}
	m.rebuild(diff.Changes{})
	return m
}

// Run starts the Bubble Tea program on screen and blocks until it quits.
func Run(screen *settings.Screen) error {
	p := tea.NewProgram(newModel(screen), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modePrompt:
		return m.updatePrompt(msg)
	case modeSearch:
		return m.updateSearch(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case k.String() == "esc":
			if m.screen.Query() != "" {
				m.search.SetValue("")
				m.apply(m.screen.OnSearchTextChanged(""), nil)
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(k, m.keys.Search):
			m.mode = modeSearch
			m.search.CursorEnd()
			cmd := m.search.Focus()
			return m, cmd
		case key.Matches(k, m.keys.AddSection):
			cmd := m.openPrompt(prompt{title: "New section", message: "Add header title of section", section: -1})
			return m, cmd
		case key.Matches(k, m.keys.AddItem):
			r, ok := m.selected()
			if !ok {
				return m, nil
			}
			cmd := m.openPrompt(prompt{title: "Place item in section", message: "Please give title to item", section: r.section})
			return m, cmd
		case key.Matches(k, m.keys.Edit):
			editing := m.screen.ToggleEditMode()
			m.keys.Delete.SetEnabled(editing)
			m.list.AdditionalShortHelpKeys = m.keys.extra
			m.list.AdditionalFullHelpKeys = m.keys.extra
			m.list.SetDelegate(rowDelegate{editing: editing})
			return m, nil
		case key.Matches(k, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		case key.Matches(k, m.keys.Toggle):
			if r, ok := m.selected(); ok && r.lead && m.screen.Query() == "" {
				m.collapsed[r.sectionID] = !m.collapsed[r.sectionID]
				m.rebuild(diff.Changes{})
				m.selectRow(r.item.ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			m.mode = modeBrowse
			m.search.Blur()
			return m, nil
		case "esc":
			m.mode = modeBrowse
			m.search.Blur()
			m.search.SetValue("")
			if m.screen.Query() != "" {
				m.apply(m.screen.OnSearchTextChanged(""), nil)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.apply(m.screen.OnSearchTextChanged(v), nil)
	}
	return m, cmd
}

func (m modelTUI) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			var (
				c   diff.Changes
				err error
			)
			if m.prompt.section < 0 {
				c, err = m.screen.OnAddSectionRequested(m.input.Value())
			} else {
				c, err = m.screen.OnAddItemRequested(m.input.Value(), m.prompt.section)
			}
			if errors.Is(err, model.ErrEmptyTitle) {
				m.prompt.err = "Title cannot be empty"
				return m, nil
			}
			m.closePrompt()
			m.apply(c, err)
			if err == nil && len(c.Inserted) > 0 {
				m.selectRow(c.Inserted[len(c.Inserted)-1])
			}
			return m, nil
		case "esc":
			m.closePrompt()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.prompt.err != "" && strings.TrimSpace(m.input.Value()) != "" {
		m.prompt.err = ""
	}
	return m, cmd
}

func (m *modelTUI) openPrompt(p prompt) tea.Cmd {
	m.mode = modePrompt
	m.prompt = p
	m.input.SetValue("")
	m.resize()
	return m.input.Focus()
}

func (m *modelTUI) closePrompt() {
	m.mode = modeBrowse
	m.prompt = prompt{}
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m *modelTUI) deleteSelected() {
	r, ok := m.selected()
	if !ok {
		return
	}
	var (
		c   diff.Changes
		err error
	)
	if !r.lead {
		c, err = m.screen.OnDeleteItemRequested(r.path())
		m.apply(c, err)
		return
	}
	// A filtered section hides rows that go with it.
	_, before := m.screen.Counts()
	c, err = m.screen.OnDeleteSectionRequested(r.section)
	m.apply(c, err)
	if err == nil {
		_, after := m.screen.Counts()
		m.status = fmt.Sprintf("deleted section (%d rows)", before-after)
	}
}

// apply re-renders after a screen handler and reports the outcome.
func (m *modelTUI) apply(c diff.Changes, err error) {
	if err != nil {
		logging.Warn("request failed", zap.Error(err))
		m.status = err.Error()
		m.statusIsError = true
		return
	}
	m.statusIsError = false
	m.status = ""
	if !c.Empty() {
		m.status = c.String()
	}
	idx := m.list.Index()
	m.rebuild(c)
	if n := len(m.list.Items()); idx >= n && n > 0 {
		m.list.Select(n - 1)
	}
}

func (m *modelTUI) rebuild(c diff.Changes) {
	m.list.SetItems(flatten(m.screen.Render(), m.collapsed, m.screen.Query() != "", c))
}

func (m modelTUI) selected() (row, bool) {
	r, ok := m.list.SelectedItem().(row)
	return r, ok
}

func (m *modelTUI) selectRow(itemID string) {
	for i, it := range m.list.Items() {
		if r, ok := it.(row); ok && (r.item.ID == itemID || r.sectionID == itemID) {
			m.list.Select(i)
			return
		}
	}
}

func (m *modelTUI) resize() {
	h := m.height - 6
	if m.mode == modePrompt {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m modelTUI) View() string {
	t := ui.Current()

	sections, items := m.screen.Counts()
	edit := t.Accent.Render("[" + m.screen.EditLabel() + "]")
	header := fmt.Sprintf("%s  %s  %s", edit, ui.Summary(sections, items), t.Accent.Render("[+]"))

	parts := []string{header, m.search.View(), m.list.View()}

	if m.mode == modePrompt {
		title := t.Title.Render(m.prompt.title) + "  " + t.Muted.Render(m.prompt.message)
		if m.prompt.err != "" {
			title += "  " + t.Error.Render(m.prompt.err)
		}
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		parts = append(parts, box.Render(title+"\n"+m.input.View()))
	}

	if m.status != "" {
		style := t.Muted
		if m.statusIsError {
			style = t.Error
		}
		parts = append(parts, style.Render(m.status))
	}
	return ui.Panel(strings.Join(parts, "\n"))
}
