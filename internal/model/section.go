package model

import "github.com/google/uuid"

// Section groups a header item and its children. Header is nil once the
// header row has been deleted; the section keeps its identity either way.
type Section struct {
	ID       string
	Header   *Item
	Children []Item
}

// Path addresses a row: Row indexes into Section.Rows().
type Path struct {
	Section int
	Row     int
}

// NewSection builds a section from items: the first is the header, the rest
// are children. items must not be empty.
func NewSection(items []Item) Section {
	s := Section{ID: uuid.NewString()}
	if len(items) == 0 {
		return s
	}
	h := items[0]
	s.Header = &h
	s.Children = append([]Item(nil), items[1:]...)
	return s
}

// Rows returns the header (if any) followed by the children.
func (s Section) Rows() []Item {
	out := make([]Item, 0, s.Len())
	if s.Header != nil {
		out = append(out, *s.Header)
	}
	return append(out, s.Children...)
}

// Len is the number of rows.
func (s Section) Len() int {
	n := len(s.Children)
	if s.Header != nil {
		n++
	}
	return n
}

// Title is the header title, or "" for a headerless section.
func (s Section) Title() string {
	if s.Header == nil {
		return ""
	}
	return s.Header.Title()
}

// Clone returns a deep copy so callers cannot reach the original slices.
func (s Section) Clone() Section {
	c := Section{ID: s.ID}
	if s.Header != nil {
		h := *s.Header
		c.Header = &h
	}
	c.Children = append([]Item(nil), s.Children...)
	return c
}

// RowOf returns the row index of the item with id, or -1.
func (s Section) RowOf(id string) int {
	for i, it := range s.Rows() {
		if it.ID == id {
			return i
		}
	}
	return -1
}
