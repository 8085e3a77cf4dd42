package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/settings/internal/diff"
	"github.com/idilsaglam/settings/internal/model"
	"github.com/idilsaglam/settings/internal/ui"
)

// row adapts one displayed entry to bubbles/list.Item. The lead row of a
// section carries the disclosure marker and stands for the section itself.
type row struct {
	sectionID string
	section   int // displayed section position
	index     int // position in the displayed section's Rows()
	item      model.Item
	lead      bool
	expanded  bool
	fresh     bool
}

func (r row) FilterValue() string { return r.item.Title() }

func (r row) path() model.Path { return model.Path{Section: r.section, Row: r.index} }

// flatten turns the displayed tree into list rows. Collapsed sections show
// only their lead row; while searching everything is expanded.
func flatten(sections []model.Section, collapsed map[string]bool, searching bool, changes diff.Changes) []list.Item {
	var out []list.Item
	for si, sec := range sections {
		rows := sec.Rows()
		if len(rows) == 0 {
			continue
		}
		expanded := searching || !collapsed[sec.ID]
		out = append(out, row{
			sectionID: sec.ID,
			section:   si,
			index:     0,
			item:      rows[0],
			lead:      true,
			expanded:  expanded,
			fresh:     changes.IsInserted(rows[0].ID),
		})
		if !expanded {
			continue
		}
		for i, it := range rows[1:] {
			out = append(out, row{
				sectionID: sec.ID,
				section:   si,
				index:     i + 1,
				item:      it,
				fresh:     changes.IsInserted(it.ID),
			})
		}
	}
	return out
}

// Custom delegate to control how rows render (single line)
type rowDelegate struct {
	editing bool
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()

	var line string
	if r.lead {
		line = ui.HeaderLine(r.item, r.expanded)
	} else {
		line = ui.ItemLine(r.item)
	}
	if r.fresh {
		line += " " + t.Inserted.Render("new")
	}
	if d.editing {
		line = t.Error.Render("⊖") + " " + line
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, ui.Truncate(prefix+line, m.Width()))
}
