package model

// Event is a local domain mutation. The set of variants is closed.
type Event interface {
	event()
}

// CreateItem adds a new item (carrying a temp id) to a list.
type CreateItem struct {
	ListID string
	Item   Item
}

// CompleteList completes every item in a list.
type CompleteList struct {
	ListID string
}

// DeleteList removes a list.
type DeleteList struct {
	ListID string
}

// CompleteItem completes a single item.
type CompleteItem struct {
	ItemID string
}

// UpdateItem edits an item in place. Empty Text leaves content untouched
// and a nil Due leaves the due date untouched.
type UpdateItem struct {
	ItemID string
	Text   string
	Due    *DueEdit
}

// CreateList adds a new list under a temp id.
type CreateList struct {
	TempID string
	Name   string
}

// RenameList changes a list's title.
type RenameList struct {
	ListID string
	Name   string
}

// MoveItem moves an item between lists. Index is the position in the
// destination list; a negative Index appends.
type MoveItem struct {
	ItemID     string
	FromListID string
	ToListID   string
	Index      int
}

// ReorderList moves a list to a new zero-based position among all lists.
type ReorderList struct {
	ListID   string
	NewIndex int
}

// UpdateID replaces a temp id with the id confirmed by the remote service.
type UpdateID struct {
	Kind  EntityKind
	OldID string
	NewID string
}

func (CreateItem) event()   {}
func (CompleteList) event() {}
func (DeleteList) event()   {}
func (CompleteItem) event() {}
func (UpdateItem) event()   {}
func (CreateList) event()   {}
func (RenameList) event()   {}
func (MoveItem) event()     {}
func (ReorderList) event()  {}
func (UpdateID) event()     {}

// EventName returns a short name for logging.
func EventName(ev Event) string {
	switch ev.(type) {
	case CreateItem:
		return "create-item"
	case CompleteList:
		return "complete-list"
	case DeleteList:
		return "delete-list"
	case CompleteItem:
		return "complete-item"
	case UpdateItem:
		return "update-item"
	case CreateList:
		return "create-list"
	case RenameList:
		return "rename-list"
	case MoveItem:
		return "move-item"
	case ReorderList:
		return "reorder-list"
	case UpdateID:
		return "update-id"
	default:
		return "unknown"
	}
}
