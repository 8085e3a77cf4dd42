package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a title is blank after trimming.
var ErrEmptyTitle = errors.New("title is required")

// Model is the content of a settings entry.
// Icon is a name looked up in the icon table, not a glyph.
type Model struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon,omitempty"`
}

// Item is an identity-keyed entry. Two items with the same Model are
// still different items.
type Item struct {
	ID    string
	Model Model
}

// NewItem wraps m in a fresh identity.
func NewItem(m Model) Item {
	return Item{ID: uuid.NewString(), Model: m}
}

// Title is a shorthand for it.Model.Title.
func (it Item) Title() string { return it.Model.Title }

// ValidateTitle trims s and rejects it when nothing is left.
func ValidateTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTitle
	}
	return s, nil
}
