package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/session"
)

func init() {
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *AddCmd) SetListName(name string) {
	c.listName = name
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create an item" }
func (c *AddCmd) Usage() string     { return "kanbanist add [--list <list-name>] <content...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, sess, c.listName, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct {
	listName string
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Create an item (alias for add)" }
func (c *CreateCmd) Usage() string     { return "kanbanist create [--list <list-name>] <content...>" }
func (c *CreateCmd) NeedsAuth() bool   { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, sess, c.listName, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
func runAdd(ctx context.Context, cfg *config.Config, sess *session.Session, listName string, args []string, out, errOut io.Writer) int {
	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		fmt.Fprintln(errOut, "error: content required")
		return exitcode.UserError
	}

	list := sess.Snapshot().Backlog
	if listName != "" {
		var code int
		if list, code = resolveListName(sess, listName, errOut); code != exitcode.Success {
			return code
		}
	}

	sess.Dispatch(ctx, model.CreateItem{
		ListID: list.ID,
		Item:   model.Item{ID: model.NewTempID(), Content: content},
	})

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
