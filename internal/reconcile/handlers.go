package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/resolve"
	"github.com/pbozzay/kanbanist/internal/service"
)

// stripConcurrency bounds the label strips in flight for one list deletion.
const stripConcurrency = 4

func (r *Router) createItem(snap model.Snapshot, e model.CreateItem) remoteTask {
	list, ok := snap.FindList(e.ListID)
	if !ok {
		return r.missingList("create-item", e.ListID)
	}
	text := QuickAddText(e.Item.Content, list, snap.DefaultProject)
	tempID := e.Item.ID

	var due *model.Due
	if model.IsDateListID(list.ID) {
		if d, err := resolve.DueForList(list.ID, r.opts.Now()); err == nil {
			due = &d
		}
	}

	return func(ctx context.Context, remote service.Remote) error {
		id, err := remote.QuickAddItem(ctx, text, tempID)
		if err != nil {
			return fmt.Errorf("could not add item: %w", err)
		}
		r.reconcileID(model.KindItem, tempID, id)

		if due != nil {
			update := service.ItemUpdate{ID: id, Due: &service.DueChange{Due: due}}
			if err := remote.UpdateItem(ctx, update); err != nil {
				return fmt.Errorf("set due date of item %s: %w", id, err)
			}
		}
		if err := r.store.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh lists: %w", err)
		}
		return nil
	}
}

// QuickAddText builds the quick-add text for an item added to list. Items in
// label lists get the list's label token; a project token is added when the
// content names no project and a default project exists.
func QuickAddText(content string, list model.List, project *model.Project) string {
	parts := []string{content}
	if label := LabelToken(list); label != "" {
		parts = append(parts, label)
	}
	if project != nil && !strings.Contains(content, "#") {
		parts = append(parts, "#"+strings.ReplaceAll(project.Name, " ", ""))
	}
	return strings.Join(parts, " ")
}

// LabelToken returns the quick-add label token of a list, or "" for the
// backlog and date lists, which have no label.
func LabelToken(list model.List) string {
	if list.IsBacklog() || model.IsDateListID(list.ID) {
		return ""
	}
	return "@" + strings.ToLower(strings.ReplaceAll(list.Title, " ", "_"))
}

func (r *Router) completeList(snap model.Snapshot, e model.CompleteList) remoteTask {
	list, ok := snap.FindList(e.ListID)
	if !ok {
		return r.missingList("complete-list", e.ListID)
	}
	ids := list.ItemIDs()
	if len(ids) == 0 {
		return nil
	}
	return func(ctx context.Context, remote service.Remote) error {
		return remote.CompleteItems(ctx, ids)
	}
}

type labelStrip struct {
	itemID string
	keep   []string
}

// deleteList strips the list's label from every item it holds and only then
// deletes the label, so no item is left pointing at a missing label.
func (r *Router) deleteList(snap model.Snapshot, e model.DeleteList) remoteTask {
	list, ok := snap.FindList(e.ListID)
	if !ok {
		return r.missingList("delete-list", e.ListID)
	}
	all := snap.AllLists()
	strips := make([]labelStrip, 0, len(list.Items))
	for _, it := range list.Items {
		strips = append(strips, labelStrip{
			itemID: it.ID,
			keep:   resolve.LabelsWithout(it.ID, all, list.ID),
		})
	}
	deleteLabel := !list.IsBacklog() && !model.IsDateListID(list.ID)

	return func(ctx context.Context, remote service.Remote) error {
		var g errgroup.Group
		g.SetLimit(stripConcurrency)
		for _, s := range strips {
			g.Go(func() error {
				if len(s.keep) == 0 {
					return remote.StripItemLabels(ctx, s.itemID)
				}
				return remote.UpdateItemLabels(ctx, s.itemID, s.keep)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("strip label %s from items, label kept: %w", list.ID, err)
		}
		if !deleteLabel {
			return nil
		}
		return remote.DeleteLabel(ctx, list.ID)
	}
}

func completeItem(e model.CompleteItem) remoteTask {
	return func(ctx context.Context, remote service.Remote) error {
		return remote.CompleteItem(ctx, e.ItemID)
	}
}

// ErrEmptyUpdate is returned by ItemUpdateFor when the event changes nothing.
var ErrEmptyUpdate = errors.New("empty update")

// ItemUpdateFor builds the partial update for an update-item event. Content is
// sent when non-empty. A due edit with a date sets the due date, one with a nil
// date clears it, and a missing due edit leaves it untouched.
func ItemUpdateFor(e model.UpdateItem) (service.ItemUpdate, error) {
	update := service.ItemUpdate{ID: e.ItemID, Content: e.Text}
	if e.Due != nil {
		switch {
		case e.Due.Date == nil:
			update.Due = &service.DueChange{}
		case *e.Due.Date != "":
			update.Due = &service.DueChange{Due: &model.Due{
				Date:        *e.Due.Date,
				String:      e.Due.String,
				IsRecurring: e.Due.IsRecurring,
			}}
		}
	}
	if update.Content == "" && update.Due == nil {
		return update, ErrEmptyUpdate
	}
	return update, nil
}

func updateItem(e model.UpdateItem) remoteTask {
	update, err := ItemUpdateFor(e)
	if err != nil {
		return nil
	}
	return func(ctx context.Context, remote service.Remote) error {
		return remote.UpdateItem(ctx, update)
	}
}

func (r *Router) createList(snap model.Snapshot, e model.CreateList) remoteTask {
	label := service.NewLabel{
		Name:      resolve.UniqueTitle(e.Name, snap.Titles()),
		ItemOrder: len(snap.Lists) + 1,
	}
	tempID := e.TempID

	return func(ctx context.Context, remote service.Remote) error {
		mapping, err := remote.AddLabel(ctx, label, tempID)
		if err != nil {
			return fmt.Errorf("could not add label %q: %w", label.Name, err)
		}
		realID, ok := mapping[tempID]
		if !ok || realID == "" {
			return fmt.Errorf("no id returned for label %q (temp id %s)", label.Name, tempID)
		}
		r.reconcileID(model.KindList, tempID, realID)
		return nil
	}
}

// renameList renames the remote label. The backlog and date lists have no
// label, so renaming them is local only.
func (r *Router) renameList(snap model.Snapshot, e model.RenameList) remoteTask {
	if model.IsBacklogID(e.ListID) || model.IsDateListID(e.ListID) {
		return nil
	}
	if _, ok := snap.FindList(e.ListID); !ok {
		return r.missingList("rename-list", e.ListID)
	}
	title := resolve.RenameTitle(e.Name, snap.Lists, e.ListID)
	return func(ctx context.Context, remote service.Remote) error {
		return remote.RenameLabel(ctx, e.ListID, title)
	}
}

func (r *Router) moveItem(snap model.Snapshot, e model.MoveItem) remoteTask {
	if e.FromListID == e.ToListID {
		return nil
	}
	labels := resolve.Labels(e.ItemID, snap.AllLists(), e.FromListID, e.ToListID)

	if model.IsDateListID(e.ToListID) {
		due, err := resolve.DueForList(e.ToListID, r.opts.Now())
		if err != nil {
			return nil
		}
		update := service.ItemUpdate{ID: e.ItemID, Due: &service.DueChange{Due: &due}}
		if r.opts.DateMoveUpdatesLabels {
			update.Labels = labels
		}
		return func(ctx context.Context, remote service.Remote) error {
			return remote.UpdateItem(ctx, update)
		}
	}

	return func(ctx context.Context, remote service.Remote) error {
		return remote.UpdateItemLabels(ctx, e.ItemID, labels)
	}
}

func (r *Router) reorderList(snap model.Snapshot, e model.ReorderList) remoteTask {
	if model.IsBacklogID(e.ListID) {
		return nil
	}
	if _, ok := snap.FindList(e.ListID); !ok {
		return r.missingList("reorder-list", e.ListID)
	}
	order := resolve.OrderMap(snap.Lists, e.ListID, e.NewIndex)
	return func(ctx context.Context, remote service.Remote) error {
		return remote.ReorderLabels(ctx, order)
	}
}
