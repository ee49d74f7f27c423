package board

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/service"
)

// dateTitleLayout is how date lists are titled.
const dateTitleLayout = "Mon Jan 2"

// Load rebuilds every list from a remote state. Items land in each label list
// they carry, in the date list matching their due date, and in the backlog
// when neither applies.
func (b *Board) Load(state service.State) {
	labels := slices.Clone(state.Labels)
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].ItemOrder < labels[j].ItemOrder
	})

	lists := make([]model.List, 0, len(labels)+b.opts.DateLists)
	index := make(map[string]int, len(labels)+b.opts.DateLists)
	for _, lb := range labels {
		index[lb.ID] = len(lists)
		lists = append(lists, model.List{ID: lb.ID, Title: lb.Name, Order: lb.ItemOrder})
	}

	today := b.opts.Now()
	for i := 0; i < b.opts.DateLists; i++ {
		day := today.AddDate(0, 0, i)
		id := day.Format(model.DateLayout)
		index[id] = len(lists)
		lists = append(lists, model.List{ID: id, Title: day.Format(dateTitleLayout), Order: len(lists) + 1})
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	backlog := model.List{ID: model.BacklogID, Title: b.backlog.Title}
	tasks := slices.Clone(state.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].ChildOrder < tasks[j].ChildOrder })

	for _, t := range tasks {
		it := model.Item{ID: t.ID, Content: t.Content, Labels: slices.Clone(t.Labels)}
		if t.Due != nil {
			d := *t.Due
			it.Due = &d
		}

		placed := false
		for _, lid := range t.Labels {
			if i, ok := index[lid]; ok {
				lists[i].Items = append(lists[i].Items, model.CloneItem(it))
				placed = true
			}
		}
		if t.Due != nil {
			if i, ok := index[t.Due.Date]; ok {
				lists[i].Items = append(lists[i].Items, model.CloneItem(it))
				placed = true
			}
		}
		if !placed {
			backlog.Items = append(backlog.Items, it)
		}
	}

	b.lists = lists
	b.backlog = backlog
	b.project = findProject(state.Projects, b.opts.DefaultProject)

	b.logger.Debug("loaded lists",
		slog.Int("labels", len(labels)),
		slog.Int("tasks", len(tasks)),
		slog.Int("backlog", len(backlog.Items)))
}

// findProject resolves a project by name (case-insensitive, trimmed).
func findProject(projects []service.Project, name string) *model.Project {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	for _, p := range projects {
		if strings.ToLower(strings.TrimSpace(p.Name)) == name {
			return &model.Project{ID: p.ID, Name: p.Name}
		}
	}
	return nil
}
