package store

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher decides whether a title is kept by a search query.
// Every implementation must accept everything for an empty query.
type Matcher interface {
	Match(query, title string) bool
}

// SubstringMatcher keeps titles containing the query, ignoring case.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(query, title string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// FuzzyMatcher keeps titles where the query characters appear in order.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(query, title string) bool {
	if query == "" {
		return true
	}
	return len(fuzzy.Find(strings.ToLower(query), []string{strings.ToLower(title)})) > 0
}

// MatcherFor maps a configured filter mode to a Matcher.
// Unknown modes fall back to substring matching.
func MatcherFor(mode string) Matcher {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "fuzzy":
		return FuzzyMatcher{}
	default:
		return SubstringMatcher{}
	}
}
