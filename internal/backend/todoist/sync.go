package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/service"
)

// command is one entry of a Sync API commands batch.
type command struct {
	Type   string `json:"type"`
	UUID   string `json:"uuid"`
	TempID string `json:"temp_id,omitempty"`
	Args   any    `json:"args"`
}

func newCommand(typ string, args any) command {
	return command{Type: typ, UUID: uuid.NewString(), Args: args}
}

type syncResponse struct {
	SyncStatus    map[string]json.RawMessage `json:"sync_status"`
	TempIDMapping map[string]string          `json:"temp_id_mapping"`
}

// CommandError reports a command the server rejected.
type CommandError struct {
	Type    string
	Code    int    `json:"error_code"`
	Message string `json:"error"`
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed: %s (code %d)", e.Type, e.Message, e.Code)
}

// exec sends a batch of commands in one request and checks every command's status.
func (c *Client) exec(ctx context.Context, cmds ...command) (syncResponse, error) {
	body, err := json.Marshal(cmds)
	if err != nil {
		return syncResponse{}, err
	}

	var resp syncResponse
	if err := c.post(ctx, "sync", url.Values{"commands": {string(body)}}, &resp); err != nil {
		return syncResponse{}, err
	}

	for _, cmd := range cmds {
		raw, ok := resp.SyncStatus[cmd.UUID]
		if !ok {
			continue
		}
		var status string
		if json.Unmarshal(raw, &status) == nil && status == "ok" {
			continue
		}
		cmdErr := &CommandError{Type: cmd.Type}
		if err := json.Unmarshal(raw, cmdErr); err != nil {
			cmdErr.Message = string(raw)
		}
		return resp, cmdErr
	}
	return resp, nil
}

// QuickAddItem creates an item from quick-add text.
func (c *Client) QuickAddItem(ctx context.Context, text, tempID string) (string, error) {
	var item struct {
		ID string `json:"id"`
	}
	form := url.Values{"text": {text}}
	if tempID != "" {
		form.Set("temp_id", tempID)
	}
	if err := c.post(ctx, "quick/add", form, &item); err != nil {
		return "", err
	}
	if item.ID == "" {
		return "", fmt.Errorf("quick add returned no id")
	}
	return item.ID, nil
}

// CompleteItems closes every item in one batch.
func (c *Client) CompleteItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	cmds := make([]command, len(ids))
	for i, id := range ids {
		cmds[i] = newCommand("item_close", map[string]string{"id": id})
	}
	_, err := c.exec(ctx, cmds...)
	return err
}

// CompleteItem closes one item.
func (c *Client) CompleteItem(ctx context.Context, id string) error {
	_, err := c.exec(ctx, newCommand("item_close", map[string]string{"id": id}))
	return err
}

// UpdateItem sends a partial item update.
func (c *Client) UpdateItem(ctx context.Context, update service.ItemUpdate) error {
	_, err := c.exec(ctx, newCommand("item_update", update.Fields()))
	return err
}

// UpdateItemLabels replaces an item's labels.
func (c *Client) UpdateItemLabels(ctx context.Context, id string, labels []string) error {
	if labels == nil {
		labels = []string{}
	}
	return c.UpdateItem(ctx, service.ItemUpdate{ID: id, Labels: labels})
}

// StripItemLabels removes every label from an item.
func (c *Client) StripItemLabels(ctx context.Context, id string) error {
	return c.UpdateItemLabels(ctx, id, []string{})
}

// AddLabel creates a label and returns the temp id mapping.
func (c *Client) AddLabel(ctx context.Context, label service.NewLabel, tempID string) (map[string]string, error) {
	cmd := newCommand("label_add", label)
	cmd.TempID = tempID
	resp, err := c.exec(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return resp.TempIDMapping, nil
}

// RenameLabel renames a label.
func (c *Client) RenameLabel(ctx context.Context, id, name string) error {
	_, err := c.exec(ctx, newCommand("label_update", map[string]string{"id": id, "name": name}))
	return err
}

// DeleteLabel deletes a label.
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	_, err := c.exec(ctx, newCommand("label_delete", map[string]string{"id": id}))
	return err
}

// ReorderLabels sets the order of every label.
func (c *Client) ReorderLabels(ctx context.Context, order map[string]int) error {
	_, err := c.exec(ctx, newCommand("label_update_orders", map[string]any{"id_order_mapping": order}))
	return err
}

type remoteLabel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemOrder int    `json:"item_order"`
	IsDeleted bool   `json:"is_deleted"`
}

type remoteItem struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Labels     []string   `json:"labels"`
	Due        *model.Due `json:"due"`
	ProjectID  string     `json:"project_id"`
	ChildOrder int        `json:"child_order"`
	Checked    bool       `json:"checked"`
	IsDeleted  bool       `json:"is_deleted"`
}

type remoteProject struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDeleted bool   `json:"is_deleted"`
}

// FetchState performs a full sync of labels, items and projects.
func (c *Client) FetchState(ctx context.Context) (service.State, error) {
	var resp struct {
		Labels   []remoteLabel   `json:"labels"`
		Items    []remoteItem    `json:"items"`
		Projects []remoteProject `json:"projects"`
	}
	form := url.Values{
		"sync_token":     {"*"},
		"resource_types": {`["labels","items","projects"]`},
	}
	if err := c.post(ctx, "sync", form, &resp); err != nil {
		return service.State{}, err
	}

	var state service.State
	for _, l := range resp.Labels {
		if l.IsDeleted {
			continue
		}
		state.Labels = append(state.Labels, service.Label{ID: l.ID, Name: l.Name, ItemOrder: l.ItemOrder})
	}
	for _, it := range resp.Items {
		if it.Checked || it.IsDeleted {
			continue
		}
		state.Tasks = append(state.Tasks, service.Task{
			ID:         it.ID,
			Content:    it.Content,
			Labels:     it.Labels,
			Due:        it.Due,
			ProjectID:  it.ProjectID,
			ChildOrder: it.ChildOrder,
		})
	}
	for _, p := range resp.Projects {
		if p.IsDeleted {
			continue
		}
		state.Projects = append(state.Projects, service.Project{ID: p.ID, Name: p.Name})
	}
	return state, nil
}
