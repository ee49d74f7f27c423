// Package session wires configuration, the remote client, the local board and
// the router into one unit a command can drive.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pbozzay/kanbanist/internal/backend/todoist"
	"github.com/pbozzay/kanbanist/internal/board"
	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/reconcile"
	"github.com/pbozzay/kanbanist/internal/service"
)

// Session is a loaded board plus the router that keeps the remote in sync.
type Session struct {
	Board  *board.Board
	Router *reconcile.Router
	Logger *slog.Logger
}

// Options configures Open.
type Options struct {
	Token  string
	Dial   service.ClientFactory
	Now    func() time.Time
	Logger *slog.Logger
}

// Open builds a session from cfg and loads the board from the remote service.
func Open(ctx context.Context, cfg *config.Config, opts Options) (*Session, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	b := board.New(opts.Dial(opts.Token), board.Options{
		Token:          opts.Token,
		DefaultProject: cfg.Settings.DefaultProject,
		DateLists:      cfg.Settings.DateLists,
		Now:            opts.Now,
		Logger:         opts.Logger,
	})
	if err := b.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}

	r := reconcile.NewRouter(b, opts.Dial, reconcile.Options{
		DateMoveUpdatesLabels: cfg.Settings.DateMoveUpdatesLabels,
		Now:                   opts.Now,
		Logger:                opts.Logger,
	})
	return &Session{Board: b, Router: r, Logger: opts.Logger}, nil
}

// Remote returns the default ClientFactory for cfg.
func Remote(cfg *config.Config) service.ClientFactory {
	return todoist.Factory(todoist.Options{
		BaseURL: cfg.Settings.APIURL,
		Timeout: cfg.Settings.Timeout,
	})
}

// Dispatch hands ev to the router and waits for its remote calls to settle.
func (s *Session) Dispatch(ctx context.Context, ev model.Event) {
	s.Router.Handle(ctx, ev)
	s.Router.Wait()
}

// Snapshot returns the current board state.
func (s *Session) Snapshot() model.Snapshot {
	return s.Board.Snapshot()
}

// ErrListNotFound and ErrAmbiguousList are returned by ResolveList.
var (
	ErrListNotFound  = errors.New("list not found")
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// ResolveList finds a list (backlog included) by title, case-insensitive and
// trimmed. Date lists also match their id.
func (s *Session) ResolveList(name string) (model.List, error) {
	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	var matches []model.List
	for _, l := range s.Snapshot().AllLists() {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower || l.ID == name {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return model.List{}, fmt.Errorf("%w: %s", ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return model.List{}, fmt.Errorf("%w: %s", ErrAmbiguousList, name)
	}
}
