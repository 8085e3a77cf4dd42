package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Header, Item, Muted, Accent lipgloss.Style
	Error, Selected, Inserted lipgloss.Style
	Border                             lipgloss.Style

	SymExpanded, SymCollapsed, SymFail string
}

var current = classic()

// SetTheme switches the palette. Unknown names get the classic theme.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
		SetColorForcing(false, true)
	default:
		current = classic()
	}
}

// Current returns the active theme.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Bold(true),
		Item:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Inserted: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		SymExpanded: "▾", SymCollapsed: "▸", SymFail: "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Inserted = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Border = t.Border.BorderForeground(lipgloss.Color("13"))
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:     "mono",
		Title:    plain,
		Header:   plain,
		Item:     plain,
		Muted:    plain,
		Accent:   plain,
		Error:    plain,
		Selected: plain,
		Inserted: plain,
		Border: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1),
		SymExpanded: "v", SymCollapsed: ">", SymFail: "x",
	}
}
