// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// Call records one operation received by FakeRemote.
type Call struct {
	Op     string
	ID     string
	IDs    []string
	Text   string
	TempID string
	Name   string
	Labels []string
	Update service.ItemUpdate
	Label  service.NewLabel
	Order  map[string]int
}

// FakeRemote is an in-memory implementation of service.Remote for testing.
// It records every call in arrival order.
type FakeRemote struct {
	mu       sync.Mutex
	labels   []service.Label
	tasks    []service.Task
	projects []service.Project
	calls    []Call
	nextID   int

	// Error injection for testing, keyed by operation name.
	Errs map[string]error
	// ItemErrs fails label operations for specific item ids.
	ItemErrs map[string]error
}

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		Errs:     make(map[string]error),
		ItemErrs: make(map[string]error),
	}
}

// Factory returns a service.ClientFactory that always hands out f.
func (f *FakeRemote) Factory() service.ClientFactory {
	return func(token string) service.Remote { return f }
}

// AddLabelState adds a label to the fake service.
func (f *FakeRemote) AddLabelState(id, name string, order int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labels = append(f.labels, service.Label{ID: id, Name: name, ItemOrder: order})
}

// AddTask adds an open item carrying the given labels.
func (f *FakeRemote) AddTask(id, content string, due *model.Due, labels ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:         id,
		Content:    content,
		Due:        due,
		Labels:     labels,
		ChildOrder: len(f.tasks) + 1,
	})
}

// AddProject adds a project.
func (f *FakeRemote) AddProject(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append(f.projects, service.Project{ID: id, Name: name})
}

// Calls returns a copy of the recorded calls.
func (f *FakeRemote) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Ops returns the names of the recorded calls.
func (f *FakeRemote) Ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]string, len(f.calls))
	for i, c := range f.calls {
		ops[i] = c.Op
	}
	return ops
}

// Task returns the stored task with the given id.
func (f *FakeRemote) Task(id string) (service.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// record appends c and returns the injected error for its operation.
// f.mu must be held.
func (f *FakeRemote) record(c Call) error {
	f.calls = append(f.calls, c)
	if err := f.Errs[c.Op]; err != nil {
		return err
	}
	if c.ID != "" {
		return f.ItemErrs[c.ID]
	}
	return nil
}

func (f *FakeRemote) genID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *FakeRemote) task(id string) *service.Task {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			return &f.tasks[i]
		}
	}
	return nil
}

// QuickAddItem implements service.Remote. @tokens matching a label name
// label the new item, like the real quick-add parser.
func (f *FakeRemote) QuickAddItem(ctx context.Context, text, tempID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "QuickAddItem", Text: text, TempID: tempID}); err != nil {
		return "", err
	}

	var labels, words []string
	for _, w := range strings.Fields(text) {
		if strings.HasPrefix(w, "@") {
			for _, lb := range f.labels {
				if strings.EqualFold(strings.ReplaceAll(lb.Name, " ", "_"), w[1:]) {
					labels = append(labels, lb.ID)
				}
			}
			continue
		}
		if strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}

	id := f.genID("task")
	f.tasks = append(f.tasks, service.Task{
		ID:         id,
		Content:    strings.Join(words, " "),
		Labels:     labels,
		ChildOrder: len(f.tasks) + 1,
	})
	return id, nil
}

// CompleteItems implements service.Remote.
func (f *FakeRemote) CompleteItems(ctx context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "CompleteItems", IDs: slices.Clone(ids)}); err != nil {
		return err
	}
	f.tasks = slices.DeleteFunc(f.tasks, func(t service.Task) bool { return slices.Contains(ids, t.ID) })
	return nil
}

// CompleteItem implements service.Remote.
func (f *FakeRemote) CompleteItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "CompleteItem", ID: id}); err != nil {
		return err
	}
	if f.task(id) == nil {
		return ErrNotFound
	}
	f.tasks = slices.DeleteFunc(f.tasks, func(t service.Task) bool { return t.ID == id })
	return nil
}

// UpdateItem implements service.Remote.
func (f *FakeRemote) UpdateItem(ctx context.Context, update service.ItemUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "UpdateItem", ID: update.ID, Update: update}); err != nil {
		return err
	}
	t := f.task(update.ID)
	if t == nil {
		return ErrNotFound
	}
	if update.Content != "" {
		t.Content = update.Content
	}
	if update.Due != nil {
		t.Due = update.Due.Due
	}
	if update.Labels != nil {
		t.Labels = slices.Clone(update.Labels)
	}
	return nil
}

// UpdateItemLabels implements service.Remote.
func (f *FakeRemote) UpdateItemLabels(ctx context.Context, id string, labels []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "UpdateItemLabels", ID: id, Labels: slices.Clone(labels)}); err != nil {
		return err
	}
	if t := f.task(id); t != nil {
		t.Labels = slices.Clone(labels)
	}
	return nil
}

// StripItemLabels implements service.Remote.
func (f *FakeRemote) StripItemLabels(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "StripItemLabels", ID: id}); err != nil {
		return err
	}
	if t := f.task(id); t != nil {
		t.Labels = nil
	}
	return nil
}

// AddLabel implements service.Remote.
func (f *FakeRemote) AddLabel(ctx context.Context, label service.NewLabel, tempID string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "AddLabel", Label: label, TempID: tempID}); err != nil {
		return nil, err
	}
	id := f.genID("label")
	f.labels = append(f.labels, service.Label{ID: id, Name: label.Name, ItemOrder: label.ItemOrder})
	return map[string]string{tempID: id}, nil
}

// RenameLabel implements service.Remote.
func (f *FakeRemote) RenameLabel(ctx context.Context, id, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "RenameLabel", ID: id, Name: name}); err != nil {
		return err
	}
	for i := range f.labels {
		if f.labels[i].ID == id {
			f.labels[i].Name = name
			return nil
		}
	}
	return ErrNotFound
}

// DeleteLabel implements service.Remote.
func (f *FakeRemote) DeleteLabel(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "DeleteLabel", ID: id}); err != nil {
		return err
	}
	f.labels = slices.DeleteFunc(f.labels, func(l service.Label) bool { return l.ID == id })
	return nil
}

// ReorderLabels implements service.Remote.
func (f *FakeRemote) ReorderLabels(ctx context.Context, order map[string]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make(map[string]int, len(order))
	for k, v := range order {
		cp[k] = v
	}
	if err := f.record(Call{Op: "ReorderLabels", Order: cp}); err != nil {
		return err
	}
	for i := range f.labels {
		if idx, ok := order[f.labels[i].ID]; ok {
			f.labels[i].ItemOrder = idx
		}
	}
	return nil
}

// FetchState implements service.Remote.
func (f *FakeRemote) FetchState(ctx context.Context) (service.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(Call{Op: "FetchState"}); err != nil {
		return service.State{}, err
	}
	tasks := make([]service.Task, len(f.tasks))
	for i, t := range f.tasks {
		t.Labels = slices.Clone(t.Labels)
		tasks[i] = t
	}
	return service.State{
		Labels:   slices.Clone(f.labels),
		Tasks:    tasks,
		Projects: slices.Clone(f.projects),
	}, nil
}

// Reset forgets the recorded calls.
func (f *FakeRemote) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
