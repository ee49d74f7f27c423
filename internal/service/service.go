// Package service defines the backend-agnostic contract of the remote task service.
package service

import "context"

// Remote defines the operations the sync layer issues against the remote service.
// Implementations are bound to one credential when they are built.
// Nothing outside the backend packages imports an HTTP client directly.
type Remote interface {
	// QuickAddItem creates an item from quick-add text and returns its id.
	QuickAddItem(ctx context.Context, text, tempID string) (string, error)

	// CompleteItems completes many items in a single request.
	CompleteItems(ctx context.Context, ids []string) error

	// CompleteItem completes one item.
	CompleteItem(ctx context.Context, id string) error

	// UpdateItem sends a partial item update. See ItemUpdate.Fields.
	UpdateItem(ctx context.Context, update ItemUpdate) error

	// UpdateItemLabels replaces the full label set of an item.
	UpdateItemLabels(ctx context.Context, id string, labels []string) error

	// StripItemLabels removes every label from an item.
	StripItemLabels(ctx context.Context, id string) error

	// AddLabel creates a label and returns the temp id -> real id mapping.
	AddLabel(ctx context.Context, label NewLabel, tempID string) (map[string]string, error)

	// RenameLabel renames a label.
	RenameLabel(ctx context.Context, id, name string) error

	// DeleteLabel deletes a label.
	DeleteLabel(ctx context.Context, id string) error

	// ReorderLabels sets the order of every label in one request.
	ReorderLabels(ctx context.Context, order map[string]int) error

	// FetchState returns all labels, open items and projects.
	FetchState(ctx context.Context) (State, error)
}

// ClientFactory builds a Remote bound to the given credential.
type ClientFactory func(token string) Remote
