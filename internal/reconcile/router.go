// Package reconcile translates local domain events into remote service calls
// and folds the remote results (confirmed ids, refreshed lists) back into the
// local state holder.
//
// Each event is planned synchronously against a snapshot taken before the event
// is applied locally. The event is then forwarded to the store unchanged and the
// remote calls run as an independent continuation. A remote failure is logged
// and never blocks or rolls back local state.
package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/service"
)

// Store is the local state holder the router reads from and reports to.
type Store interface {
	// Snapshot returns an immutable copy of the current state.
	Snapshot() model.Snapshot

	// Apply performs the local effect of an event.
	Apply(ev model.Event)

	// Refresh replaces all lists with the remote state.
	Refresh(ctx context.Context) error
}

// Options configures a Router.
type Options struct {
	// DateMoveUpdatesLabels also sends the recomputed label set when an item
	// moves into a date list. By default only the due date is sent.
	DateMoveUpdatesLabels bool

	Now    func() time.Time
	Logger *slog.Logger
}

// remoteTask is the remote half of an event, run as a continuation.
type remoteTask func(ctx context.Context, remote service.Remote) error

// Router dispatches domain events to their remote handlers.
type Router struct {
	store  Store
	dial   service.ClientFactory
	opts   Options
	logger *slog.Logger

	wg sync.WaitGroup
}

// NewRouter creates a router. dial builds a remote client from the snapshot credential.
func NewRouter(store Store, dial service.ClientFactory, opts Options) *Router {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router{store: store, dial: dial, opts: opts, logger: logger}
}

// Handle plans the remote side of ev, forwards ev to the store and starts the
// remote calls in the background. It never fails: remote errors are logged.
func (r *Router) Handle(ctx context.Context, ev model.Event) {
	snap := r.store.Snapshot()
	task := r.plan(snap, ev)

	r.store.Apply(ev)

	if task == nil {
		return
	}
	remote := r.dial(snap.Token)
	name := model.EventName(ev)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		start := time.Now()
		if err := task(ctx, remote); err != nil {
			r.logger.Error("remote sync failed",
				slog.String("event", name),
				slog.String("error", err.Error()))
			return
		}
		r.logger.Debug("remote sync done",
			slog.String("event", name),
			slog.Duration("duration", time.Since(start)))
	}()
}

// Wait blocks until every continuation started so far has finished.
func (r *Router) Wait() {
	r.wg.Wait()
}

func (r *Router) plan(snap model.Snapshot, ev model.Event) remoteTask {
	switch e := ev.(type) {
	case model.CreateItem:
		return r.createItem(snap, e)
	case model.CompleteList:
		return r.completeList(snap, e)
	case model.DeleteList:
		return r.deleteList(snap, e)
	case model.CompleteItem:
		return completeItem(e)
	case model.UpdateItem:
		return updateItem(e)
	case model.CreateList:
		return r.createList(snap, e)
	case model.RenameList:
		return r.renameList(snap, e)
	case model.MoveItem:
		return r.moveItem(snap, e)
	case model.ReorderList:
		return r.reorderList(snap, e)
	default:
		return nil
	}
}

// reconcileID tells the store that tempID is now realID. It must run in the
// continuation of the create call, before anything references the new id.
func (r *Router) reconcileID(kind model.EntityKind, tempID, realID string) {
	r.store.Apply(model.UpdateID{Kind: kind, OldID: tempID, NewID: realID})
}

func (r *Router) missingList(event, listID string) remoteTask {
	r.logger.Warn("unknown list, skipping remote sync",
		slog.String("event", event),
		slog.String("list", listID))
	return nil
}
