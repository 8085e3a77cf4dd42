package store

import "github.com/idilsaglam/settings/internal/model"

// DefaultSections is the collection shown when no seed is configured.
func DefaultSections() [][]model.Model {
	return [][]model.Model{
		{
			{Title: "General", Icon: "General"},
			{Title: "About", Icon: "About"},
		},
		{
			{Title: "Privacy and Security", Icon: "Privacy and Security"},
			{Title: "Health", Icon: "Health"},
		},
	}
}

// Seed builds a store from sections of models. Empty sections are skipped.
func Seed(sections [][]model.Model, opts ...Option) *Store {
	s := New(opts...)
	for _, ms := range sections {
		ms = append([]model.Model(nil), ms...)
		for i := range ms {
			if ms[i].Icon == "" {
				ms[i].Icon = model.ResolveIcon(ms[i].Title)
			}
		}
		_, _ = s.AddSection(ms...)
	}
	return s
}
