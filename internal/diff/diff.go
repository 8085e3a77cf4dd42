// Package diff compares two displayed states of the settings list by row
// identity.
package diff

import (
	"fmt"

	"github.com/idilsaglam/settings/internal/model"
)

// Snapshot is the ordered list of identities shown on screen: each section
// id followed by the ids of its rows.
type Snapshot []string

// Take records the identities of sections in display order.
func Take(sections []model.Section) Snapshot {
	var s Snapshot
	for _, sec := range sections {
		s = append(s, sec.ID)
		for _, it := range sec.Rows() {
			s = append(s, it.ID)
		}
	}
	return s
}

// Changes lists what differs between two snapshots.
type Changes struct {
	Inserted []string
	Deleted  []string
	Moved    []string
}

// Compute diffs old against new by set difference. An id present in both is
// moved when its position among the ids common to both snapshots changed.
func Compute(old, new Snapshot) Changes {
	inOld := index(old)
	inNew := index(new)

	var c Changes
	for _, id := range new {
		if _, ok := inOld[id]; !ok {
			c.Inserted = append(c.Inserted, id)
		}
	}
	for _, id := range old {
		if _, ok := inNew[id]; !ok {
			c.Deleted = append(c.Deleted, id)
		}
	}

	oldCommon := common(old, inNew)
	newCommon := common(new, inOld)
	pos := index(oldCommon)
	for i, id := range newCommon {
		if pos[id] != i {
			c.Moved = append(c.Moved, id)
		}
	}
	return c
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Inserted) == 0 && len(c.Deleted) == 0 && len(c.Moved) == 0
}

// IsInserted reports whether id was inserted.
func (c Changes) IsInserted(id string) bool {
	for _, x := range c.Inserted {
		if x == id {
			return true
		}
	}
	return false
}

func (c Changes) String() string {
	return fmt.Sprintf("+%d -%d ~%d", len(c.Inserted), len(c.Deleted), len(c.Moved))
}

func index(s Snapshot) map[string]int {
	m := make(map[string]int, len(s))
	for i, id := range s {
		m[id] = i
	}
	return m
}

func common(s Snapshot, other map[string]int) Snapshot {
	out := make(Snapshot, 0, len(s))
	for _, id := range s {
		if _, ok := other[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
