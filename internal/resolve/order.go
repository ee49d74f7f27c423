package resolve

import "github.com/pbozzay/kanbanist/internal/model"

// Reorder returns ids with id moved to newIndex. newIndex is clamped to the
// valid range. An unknown id leaves the order unchanged.
func Reorder(ids []string, id string, newIndex int) []string {
	rest := make([]string, 0, len(ids))
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		rest = append(rest, v)
	}
	if !found {
		return append([]string(nil), ids...)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(rest) {
		newIndex = len(rest)
	}

	out := make([]string, 0, len(ids))
	out = append(out, rest[:newIndex]...)
	out = append(out, id)
	return append(out, rest[newIndex:]...)
}

// OrderMap moves a list to newIndex and maps every label list id to its new
// zero-based position. Date lists and the backlog are not labels and are skipped.
func OrderMap(lists []model.List, listID string, newIndex int) map[string]int {
	ids := make([]string, 0, len(lists))
	for _, l := range lists {
		if l.IsBacklog() || model.IsDateListID(l.ID) {
			continue
		}
		ids = append(ids, l.ID)
	}

	order := make(map[string]int, len(ids))
	for i, id := range Reorder(ids, listID, newIndex) {
		order[id] = i
	}
	return order
}
