// Package model defines the local domain: lists, items and their due dates.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// BacklogID identifies the backlog list. The backlog has no remote label.
	BacklogID = "backlog"

	// DateLayout is the layout of date list identifiers and due dates.
	DateLayout = "2006-01-02"

	tempIDPrefix = "tmp-"
)

// EntityKind names the type of entity whose id is being reconciled.
type EntityKind int

const (
	KindItem EntityKind = iota
	KindList
)

func (k EntityKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Due is the due-date payload of an item.
type Due struct {
	Date        string `json:"date"`
	String      string `json:"string"`
	IsRecurring bool   `json:"is_recurring"`
}

// DueEdit describes a change to an item's due date.
// A nil Date clears the due date.
type DueEdit struct {
	Date        *string
	String      string
	IsRecurring bool
}

// Item represents a single task.
type Item struct {
	ID      string
	Content string
	Due     *Due
	Labels  []string
}

// List is a named group of items. Non-backlog, non-date lists are labels remotely.
type List struct {
	ID    string
	Title string
	Items []Item
	Order int
}

// Contains reports whether the list holds the item.
func (l List) Contains(itemID string) bool {
	return l.IndexOf(itemID) >= 0
}

// IndexOf returns the position of the item in the list, or -1.
func (l List) IndexOf(itemID string) int {
	for i, it := range l.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// ItemIDs returns the ids of all items in the list, in order.
func (l List) ItemIDs() []string {
	ids := make([]string, len(l.Items))
	for i, it := range l.Items {
		ids[i] = it.ID
	}
	return ids
}

// IsBacklog reports whether the list is the backlog.
func (l List) IsBacklog() bool {
	return IsBacklogID(l.ID)
}

// Project is a remote project. Only its name is used, for quick-add.
type Project struct {
	ID   string
	Name string
}

// IsBacklogID reports whether id is the backlog sentinel.
func IsBacklogID(id string) bool {
	return id == BacklogID
}

// IsDateListID reports whether id names a date list.
func IsDateListID(id string) bool {
	_, err := time.Parse(DateLayout, id)
	return err == nil
}

// NewTempID returns a client-side placeholder id.
func NewTempID() string {
	return tempIDPrefix + uuid.NewString()
}

// IsTempID reports whether id has not been confirmed by the remote service yet.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

// CloneItem returns a deep copy of it.
func CloneItem(it Item) Item {
	out := it
	if it.Due != nil {
		d := *it.Due
		out.Due = &d
	}
	if it.Labels != nil {
		out.Labels = append([]string(nil), it.Labels...)
	}
	return out
}

// CloneList returns a deep copy of l.
func CloneList(l List) List {
	out := l
	out.Items = nil
	if l.Items != nil {
		out.Items = make([]Item, len(l.Items))
		for i, it := range l.Items {
			out.Items[i] = CloneItem(it)
		}
	}
	return out
}
