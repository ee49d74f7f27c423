// Package board holds the local model of lists and items the user edits.
// Every event is applied optimistically; the remote side is reconciled separately.
package board

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/resolve"
	"github.com/pbozzay/kanbanist/internal/service"
)

// BacklogTitle is the default title of the backlog list.
const BacklogTitle = "Backlog"

// Options configures a Board.
type Options struct {
	// Token is the opaque remote credential handed out in snapshots.
	Token string

	// DefaultProject is the name of the project quick-added items go to.
	DefaultProject string

	// DateLists is the number of upcoming days shown as date lists.
	DateLists int

	Now    func() time.Time
	Logger *slog.Logger
}

// Board is the local state holder. It is safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	lists   []model.List
	backlog model.List
	project *model.Project

	remote service.Remote
	opts   Options
	logger *slog.Logger
}

// New creates an empty board that refreshes from remote.
func New(remote service.Remote, opts Options) *Board {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Board{
		backlog: model.List{ID: model.BacklogID, Title: BacklogTitle},
		remote:  remote,
		opts:    opts,
		logger:  logger,
	}
}

// NewFromSnapshot creates a board holding a copy of s. Used by tests and
// callers that already hold state.
func NewFromSnapshot(remote service.Remote, s model.Snapshot, opts Options) *Board {
	b := New(remote, opts)
	s = s.Clone()
	b.lists = s.Lists
	if s.Backlog.ID != "" {
		b.backlog = s.Backlog
	}
	b.project = s.DefaultProject
	if s.Token != "" {
		b.opts.Token = s.Token
	}
	return b
}

// Snapshot returns a deep copy of the current state.
func (b *Board) Snapshot() model.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return model.Snapshot{
		Token:          b.opts.Token,
		DefaultProject: b.project,
		Lists:          b.lists,
		Backlog:        b.backlog,
	}.Clone()
}

// Apply performs the local effect of ev. Unknown events are ignored.
func (b *Board) Apply(ev model.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch e := ev.(type) {
	case model.CreateItem:
		b.createItem(e)
	case model.CompleteItem:
		b.removeItems(e.ItemID)
	case model.CompleteList:
		if l := b.list(e.ListID); l != nil {
			b.removeItems(l.ItemIDs()...)
		}
	case model.DeleteList:
		b.deleteList(e.ListID)
	case model.UpdateItem:
		b.updateItem(e)
	case model.CreateList:
		b.lists = append(b.lists, model.List{
			ID:    e.TempID,
			Title: resolve.UniqueTitle(e.Name, b.titles()),
			Order: len(b.lists) + 1,
		})
	case model.RenameList:
		if model.IsBacklogID(e.ListID) {
			b.backlog.Title = e.Name
			return
		}
		if l := b.list(e.ListID); l != nil {
			l.Title = resolve.RenameTitle(e.Name, b.lists, e.ListID)
		}
	case model.MoveItem:
		b.moveItem(e)
	case model.ReorderList:
		b.reorder(e)
	case model.UpdateID:
		b.updateID(e)
	}
}

// Lookup helpers below expect b.mu to be held.

func (b *Board) list(id string) *model.List {
	if model.IsBacklogID(id) {
		return &b.backlog
	}
	for i := range b.lists {
		if b.lists[i].ID == id {
			return &b.lists[i]
		}
	}
	return nil
}

func (b *Board) all() []*model.List {
	all := make([]*model.List, 0, len(b.lists)+1)
	for i := range b.lists {
		all = append(all, &b.lists[i])
	}
	return append(all, &b.backlog)
}

func (b *Board) titles() []string {
	titles := make([]string, len(b.lists))
	for i, l := range b.lists {
		titles[i] = l.Title
	}
	return titles
}

func (b *Board) createItem(e model.CreateItem) {
	l := b.list(e.ListID)
	if l == nil {
		b.logger.Warn("create item in unknown list", slog.String("list", e.ListID))
		return
	}
	it := model.CloneItem(e.Item)
	switch {
	case l.IsBacklog():
	case model.IsDateListID(l.ID):
		if due, err := resolve.DueForList(l.ID, b.opts.Now()); err == nil {
			it.Due = &due
		}
	default:
		if !slices.Contains(it.Labels, l.ID) {
			it.Labels = append(it.Labels, l.ID)
		}
	}
	l.Items = append(l.Items, it)
}

func (b *Board) removeItems(ids ...string) {
	for _, l := range b.all() {
		l.Items = slices.DeleteFunc(l.Items, func(it model.Item) bool {
			return slices.Contains(ids, it.ID)
		})
	}
}

// deleteList removes the list and its label from every item.
// The backlog always exists and is left in place.
func (b *Board) deleteList(id string) {
	if model.IsBacklogID(id) {
		return
	}
	b.lists = slices.DeleteFunc(b.lists, func(l model.List) bool { return l.ID == id })
	b.eachItem(func(it *model.Item) {
		it.Labels = slices.DeleteFunc(it.Labels, func(l string) bool { return l == id })
	})
}

func (b *Board) eachItem(fn func(it *model.Item)) {
	for _, l := range b.all() {
		for i := range l.Items {
			fn(&l.Items[i])
		}
	}
}

func (b *Board) updateItem(e model.UpdateItem) {
	b.eachItem(func(it *model.Item) {
		if it.ID != e.ItemID {
			return
		}
		if e.Text != "" {
			it.Content = e.Text
		}
		if e.Due == nil {
			return
		}
		switch {
		case e.Due.Date == nil:
			it.Due = nil
		case *e.Due.Date != "":
			it.Due = &model.Due{Date: *e.Due.Date, String: e.Due.String, IsRecurring: e.Due.IsRecurring}
		}
	})
}

func (b *Board) moveItem(e model.MoveItem) {
	if e.FromListID == e.ToListID {
		return
	}
	from, to := b.list(e.FromListID), b.list(e.ToListID)
	if from == nil || to == nil {
		return
	}
	idx := from.IndexOf(e.ItemID)
	if idx < 0 {
		return
	}

	labels := resolve.Labels(e.ItemID, b.lists, e.FromListID, e.ToListID)
	it := from.Items[idx]
	from.Items = slices.Delete(from.Items, idx, idx+1)

	if !to.Contains(e.ItemID) {
		pos := e.Index
		if pos < 0 || pos > len(to.Items) {
			pos = len(to.Items)
		}
		to.Items = slices.Insert(to.Items, pos, it)
	}

	var due *model.Due
	if model.IsDateListID(e.ToListID) {
		if d, err := resolve.DueForList(e.ToListID, b.opts.Now()); err == nil {
			due = &d
		}
	}
	b.eachItem(func(c *model.Item) {
		if c.ID != e.ItemID {
			return
		}
		c.Labels = append([]string(nil), labels...)
		if due != nil {
			d := *due
			c.Due = &d
		}
	})
}

func (b *Board) reorder(e model.ReorderList) {
	ids := make([]string, len(b.lists))
	byID := make(map[string]model.List, len(b.lists))
	for i, l := range b.lists {
		ids[i] = l.ID
		byID[l.ID] = l
	}
	for i, id := range resolve.Reorder(ids, e.ListID, e.NewIndex) {
		l := byID[id]
		l.Order = i + 1
		b.lists[i] = l
	}
}

// updateID rewrites every reference to e.OldID. A second application for the
// same id finds nothing to rewrite.
func (b *Board) updateID(e model.UpdateID) {
	changed := 0
	switch e.Kind {
	case model.KindItem:
		b.eachItem(func(it *model.Item) {
			if it.ID == e.OldID {
				it.ID = e.NewID
				changed++
			}
		})
	case model.KindList:
		if l := b.list(e.OldID); l != nil && !l.IsBacklog() {
			l.ID = e.NewID
			changed++
		}
		b.eachItem(func(it *model.Item) {
			for i, lid := range it.Labels {
				if lid == e.OldID {
					it.Labels[i] = e.NewID
					changed++
				}
			}
		})
	}
	b.logger.Debug("reconciled id",
		slog.String("kind", e.Kind.String()),
		slog.String("old_id", e.OldID),
		slog.String("new_id", e.NewID),
		slog.Int("references", changed))
}

// Refresh replaces all lists with the state fetched from the remote service.
func (b *Board) Refresh(ctx context.Context) error {
	state, err := b.remote.FetchState(ctx)
	if err != nil {
		return err
	}
	b.Load(state)
	return nil
}
