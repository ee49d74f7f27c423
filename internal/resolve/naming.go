// Package resolve holds the pure functions that derive remote state from local state.
package resolve

import "github.com/pbozzay/kanbanist/internal/model"

// TitleSuffix is appended to a title until it no longer collides.
const TitleSuffix = " 2"

// UniqueTitle returns candidate, or candidate with TitleSuffix appended as many
// times as needed, so that the result is not in existing.
func UniqueTitle(candidate string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		taken[t] = struct{}{}
	}

	title := candidate
	for {
		if _, ok := taken[title]; !ok {
			return title
		}
		title += TitleSuffix
	}
}

// RenameTitle resolves a new title for the list identified by listID.
// The list's own current title does not count as a collision.
func RenameTitle(name string, lists []model.List, listID string) string {
	existing := make([]string, 0, len(lists))
	for _, l := range lists {
		if l.ID != listID {
			existing = append(existing, l.Title)
		}
	}
	return UniqueTitle(name, existing)
}
