package resolve

import (
	"sort"

	"github.com/pbozzay/kanbanist/internal/model"
)

// Labels computes the remote label ids an item should carry after moving from
// one list to another. lists may include the backlog; it never contributes a label.
// Date lists are not labels either. The result is sorted.
func Labels(itemID string, lists []model.List, fromID, toID string) []string {
	set := make(map[string]struct{})
	for _, l := range lists {
		if l.IsBacklog() || !l.Contains(itemID) {
			continue
		}
		set[l.ID] = struct{}{}
	}
	if !model.IsBacklogID(toID) {
		set[toID] = struct{}{}
	}
	delete(set, fromID)
	delete(set, model.BacklogID)

	labels := make([]string, 0, len(set))
	for id := range set {
		if model.IsDateListID(id) {
			continue
		}
		labels = append(labels, id)
	}
	sort.Strings(labels)
	return labels
}

// LabelsWithout returns the labels the item keeps once the list is removed.
func LabelsWithout(itemID string, lists []model.List, listID string) []string {
	labels := make([]string, 0)
	for _, l := range lists {
		if l.ID == listID || l.IsBacklog() || model.IsDateListID(l.ID) {
			continue
		}
		if l.Contains(itemID) {
			labels = append(labels, l.ID)
		}
	}
	sort.Strings(labels)
	return labels
}
