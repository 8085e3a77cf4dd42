// Package store holds the in-memory section/item collection and the rules
// for mutating it. It has a single writer and does no locking.
package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/settings/internal/model"
)

var (
	// ErrInvalidIndex is returned for a section or row position that does
	// not exist. The collection is left untouched.
	ErrInvalidIndex = errors.New("index out of range")
	// ErrNoItems is returned when a section would be created empty.
	ErrNoItems = errors.New("section needs at least one item")
)

// Store is an ordered collection of sections. Display order is insertion order.
type Store struct {
	sections []model.Section
	matcher  Matcher
}

// Option configures a Store.
type Option func(*Store)

// WithMatcher replaces the default substring matcher.
func WithMatcher(m Matcher) Option {
	return func(s *Store) {
		if m != nil {
			s.matcher = m
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{matcher: SubstringMatcher{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AddSection creates a section whose header is the first model and whose
// children are the rest. It returns the new section's id.
func (s *Store) AddSection(models ...model.Model) (string, error) {
	if len(models) == 0 {
		return "", ErrNoItems
	}
	sec := model.NewSection(newItems(models))
	s.sections = append(s.sections, sec)
	return sec.ID, nil
}

// AddItem appends models as children of the section at sectionIndex.
func (s *Store) AddItem(sectionIndex int, models ...model.Model) error {
	if !s.validSection(sectionIndex) {
		return fmt.Errorf("add item to section %d: %w", sectionIndex, ErrInvalidIndex)
	}
	if len(models) == 0 {
		return nil
	}
	sec := &s.sections[sectionIndex]
	sec.Children = append(sec.Children, newItems(models)...)
	return nil
}

// DeleteSection removes the section at sectionIndex and all of its rows.
func (s *Store) DeleteSection(sectionIndex int) error {
	if !s.validSection(sectionIndex) {
		return fmt.Errorf("delete section %d: %w", sectionIndex, ErrInvalidIndex)
	}
	s.sections = append(s.sections[:sectionIndex], s.sections[sectionIndex+1:]...)
	return nil
}

// DeleteItem removes the row at p. Removing the header row leaves the
// section without a header. A section whose last row goes is dropped.
func (s *Store) DeleteItem(p model.Path) error {
	if !s.validSection(p.Section) {
		return fmt.Errorf("delete item %d/%d: %w", p.Section, p.Row, ErrInvalidIndex)
	}
	sec := &s.sections[p.Section]
	if p.Row < 0 || p.Row >= sec.Len() {
		return fmt.Errorf("delete item %d/%d: %w", p.Section, p.Row, ErrInvalidIndex)
	}
	row := p.Row
	if sec.Header != nil {
		if row == 0 {
			sec.Header = nil
			row = -1
		} else {
			row--
		}
	}
	if row >= 0 {
		sec.Children = append(sec.Children[:row], sec.Children[row+1:]...)
	}
	if sec.Len() == 0 {
		s.sections = append(s.sections[:p.Section], s.sections[p.Section+1:]...)
	}
	return nil
}

// Filter returns, per section, the rows whose title matches query. Sections
// with nothing left are omitted; a header is kept only if it matches itself.
// The store is not modified.
func (s *Store) Filter(query string) []model.Section {
	out := make([]model.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		f := model.Section{ID: sec.ID}
		if sec.Header != nil && s.matcher.Match(query, sec.Header.Title()) {
			h := *sec.Header
			f.Header = &h
		}
		for _, it := range sec.Children {
			if s.matcher.Match(query, it.Title()) {
				f.Children = append(f.Children, it)
			}
		}
		if f.Len() > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Sections returns a copy of every section in display order.
func (s *Store) Sections() []model.Section {
	out := make([]model.Section, len(s.sections))
	for i, sec := range s.sections {
		out[i] = sec.Clone()
	}
	return out
}

// Len is the number of sections.
func (s *Store) Len() int { return len(s.sections) }

// ItemCount is the number of rows across all sections.
func (s *Store) ItemCount() int {
	n := 0
	for _, sec := range s.sections {
		n += sec.Len()
	}
	return n
}

// SectionIndex returns the position of the section with id, or -1.
func (s *Store) SectionIndex(id string) int {
	for i, sec := range s.sections {
		if sec.ID == id {
			return i
		}
	}
	return -1
}

// PathOf locates the item with id.
func (s *Store) PathOf(itemID string) (model.Path, bool) {
	for i, sec := range s.sections {
		if r := sec.RowOf(itemID); r >= 0 {
			return model.Path{Section: i, Row: r}, true
		}
	}
	return model.Path{}, false
}

func (s *Store) validSection(i int) bool {
	return i >= 0 && i < len(s.sections)
}

func newItems(models []model.Model) []model.Item {
	items := make([]model.Item, len(models))
	for i, m := range models {
		items[i] = model.NewItem(m)
	}
	return items
}
