package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/settings/internal/model"
)

// Truncate shortens s to width cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// Panel wraps inner in the theme's border.
func Panel(inner string) string {
	return Current().Border.Render(inner)
}

// HeaderLine renders the lead row of a section: disclosure marker, icon
// and title. The lead row is the header, or the first remaining row when
// the header is gone or filtered out.
func HeaderLine(lead model.Item, expanded bool) string {
	t := Current()
	mark := t.SymCollapsed
	if expanded {
		mark = t.SymExpanded
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(mark), model.Glyph(lead.Model.Icon), t.Header.Render(lead.Title()))
}

// ItemLine renders a child row, indented under its lead row.
func ItemLine(it model.Item) string {
	return fmt.Sprintf("    %s %s", model.Glyph(it.Model.Icon), Current().Item.Render(it.Title()))
}

// Tree renders sections as plain lines for non-interactive output.
func Tree(sections []model.Section, width int) []string {
	t := Current()
	if len(sections) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	var lines []string
	for i, sec := range sections {
		rows := sec.Rows()
		if len(rows) == 0 {
			continue
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Truncate(HeaderLine(rows[0], true), width))
		for _, it := range rows[1:] {
			lines = append(lines, Truncate(ItemLine(it), width))
		}
	}
	return lines
}

// Summary is the "Settings  N sections  M items" title line.
func Summary(sections, items int) string {
	t := Current()
	return strings.Join([]string{
		t.Title.Render("Settings"),
		t.Accent.Render(fmt.Sprintf("%d sections", sections)),
		t.Muted.Render(fmt.Sprintf("%d items", items)),
	}, "  ")
}
