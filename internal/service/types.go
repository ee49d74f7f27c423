package service

import "github.com/pbozzay/kanbanist/internal/model"

// NewLabel is the payload of a label creation.
type NewLabel struct {
	Name      string `json:"name"`
	ItemOrder int    `json:"item_order"`
}

// DueChange carries a due date to set. A nil Due clears the due date.
type DueChange struct {
	Due *model.Due
}

// ItemUpdate is a partial item update. Zero-valued fields are not sent;
// a nil Due leaves the due date untouched.
type ItemUpdate struct {
	ID      string
	Content string
	Due     *DueChange
	Labels  []string
}

// Fields renders the update as the remote payload. Only the keys being
// changed are present; a cleared due date is an explicit nil.
func (u ItemUpdate) Fields() map[string]any {
	fields := map[string]any{"id": u.ID}
	if u.Content != "" {
		fields["content"] = u.Content
	}
	if u.Due != nil {
		if u.Due.Due == nil {
			fields["due"] = nil
		} else {
			fields["due"] = *u.Due.Due
		}
	}
	if u.Labels != nil {
		fields["labels"] = u.Labels
	}
	return fields
}

// Label is a remote label.
type Label struct {
	ID        string
	Name      string
	ItemOrder int
}

// Task is a remote open item.
type Task struct {
	ID         string
	Content    string
	Labels     []string
	Due        *model.Due
	ProjectID  string
	ChildOrder int
}

// Project is a remote project.
type Project struct {
	ID   string
	Name string
}

// State is everything a full refresh needs.
type State struct {
	Labels   []Label
	Tasks    []Task
	Projects []Project
}
