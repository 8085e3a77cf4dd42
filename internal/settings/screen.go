// Package settings is the presentation layer of the settings list: it turns
// user requests into store operations and tracks what is on screen so every
// change can be reported as a diff against the previous display.
package settings

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/settings/internal/diff"
	"github.com/idilsaglam/settings/internal/logging"
	"github.com/idilsaglam/settings/internal/model"
	"github.com/idilsaglam/settings/internal/store"
)

// Screen holds the store plus view state: the search query and edit mode.
// Positions passed to the On* handlers refer to the displayed tree, which
// may be filtered.
type Screen struct {
	store   *store.Store
	query   string
	editing bool
	shown   diff.Snapshot
	last    diff.Changes
}

// New wraps st. The initial display counts as all-inserted.
func New(st *store.Store) *Screen {
	s := &Screen{store: st}
	s.refresh("initial")
	return s
}

// Render returns the displayed tree for the current query.
func (s *Screen) Render() []model.Section {
	return s.store.Filter(s.query)
}

// Query is the active search text.
func (s *Screen) Query() string { return s.query }

// Editing reports whether removal is enabled.
func (s *Screen) Editing() bool { return s.editing }

// ToggleEditMode flips edit mode and returns the new state.
func (s *Screen) ToggleEditMode() bool {
	s.editing = !s.editing
	logging.Debug("edit mode", zap.Bool("editing", s.editing))
	return s.editing
}

// EditLabel is the caption of the edit toggle.
func (s *Screen) EditLabel() string {
	if s.editing {
		return "Done"
	}
	return "Edit"
}

// LastChanges is the diff produced by the most recent handler.
func (s *Screen) LastChanges() diff.Changes { return s.last }

// Counts returns the number of sections and rows in the whole collection.
func (s *Screen) Counts() (sections, items int) {
	return s.store.Len(), s.store.ItemCount()
}

// OnAddSectionRequested adds a section headed by title.
func (s *Screen) OnAddSectionRequested(title string) (diff.Changes, error) {
	m, err := newModel(title)
	if err != nil {
		return diff.Changes{}, err
	}
	id, err := s.store.AddSection(m)
	if err != nil {
		return diff.Changes{}, err
	}
	logging.Debug("section added", zap.String("section", id), zap.String("title", m.Title))
	return s.refresh("add section"), nil
}

// OnAddItemRequested appends an item titled title to the displayed section
// at sectionIndex.
func (s *Screen) OnAddItemRequested(title string, sectionIndex int) (diff.Changes, error) {
	m, err := newModel(title)
	if err != nil {
		return diff.Changes{}, err
	}
	idx, err := s.storeSection(sectionIndex)
	if err != nil {
		return diff.Changes{}, fmt.Errorf("add item: %w", err)
	}
	if err := s.store.AddItem(idx, m); err != nil {
		return diff.Changes{}, err
	}
	logging.Debug("item added", zap.Int("section", idx), zap.String("title", m.Title))
	return s.refresh("add item"), nil
}

// OnDeleteSectionRequested removes the displayed section at sectionIndex.
func (s *Screen) OnDeleteSectionRequested(sectionIndex int) (diff.Changes, error) {
	idx, err := s.storeSection(sectionIndex)
	if err != nil {
		return diff.Changes{}, fmt.Errorf("delete section: %w", err)
	}
	if err := s.store.DeleteSection(idx); err != nil {
		return diff.Changes{}, err
	}
	logging.Debug("section deleted", zap.Int("section", idx))
	return s.refresh("delete section"), nil
}

// OnDeleteItemRequested removes the displayed row at p.
func (s *Screen) OnDeleteItemRequested(p model.Path) (diff.Changes, error) {
	shown := s.Render()
	if p.Section < 0 || p.Section >= len(shown) {
		return diff.Changes{}, fmt.Errorf("delete item: %w", store.ErrInvalidIndex)
	}
	rows := shown[p.Section].Rows()
	if p.Row < 0 || p.Row >= len(rows) {
		return diff.Changes{}, fmt.Errorf("delete item: %w", store.ErrInvalidIndex)
	}
	sp, ok := s.store.PathOf(rows[p.Row].ID)
	if !ok {
		return diff.Changes{}, fmt.Errorf("delete item: %w", store.ErrInvalidIndex)
	}
	if err := s.store.DeleteItem(sp); err != nil {
		return diff.Changes{}, err
	}
	logging.Debug("item deleted", zap.Int("section", sp.Section), zap.Int("row", sp.Row))
	return s.refresh("delete item"), nil
}

// OnSearchTextChanged replaces the query and re-renders.
func (s *Screen) OnSearchTextChanged(text string) diff.Changes {
	s.query = text
	return s.refresh("search")
}

// storeSection maps a displayed section position to its store position.
func (s *Screen) storeSection(displayed int) (int, error) {
	shown := s.Render()
	if displayed < 0 || displayed >= len(shown) {
		return -1, store.ErrInvalidIndex
	}
	idx := s.store.SectionIndex(shown[displayed].ID)
	if idx < 0 {
		return -1, store.ErrInvalidIndex
	}
	return idx, nil
}

func (s *Screen) refresh(reason string) diff.Changes {
	next := diff.Take(s.Render())
	s.last = diff.Compute(s.shown, next)
	s.shown = next
	logging.Debug("display updated", zap.String("reason", reason), zap.Stringer("changes", s.last))
	return s.last
}

func newModel(title string) (model.Model, error) {
	t, err := model.ValidateTitle(title)
	if err != nil {
		return model.Model{}, err
	}
	return model.Model{Title: t, Icon: model.ResolveIcon(t)}, nil
}
