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
	Register(&RenameListCmd{})
}

// RenameListCmd implements the renamelist command.
type RenameListCmd struct {
	to string
}

// SetTo sets the new list name (for testing).
func (c *RenameListCmd) SetTo(name string) { c.to = name }

func (c *RenameListCmd) Name() string      { return "renamelist" }
func (c *RenameListCmd) Aliases() []string { return nil }
func (c *RenameListCmd) Synopsis() string  { return "Rename a list" }
func (c *RenameListCmd) Usage() string     { return "kanbanist renamelist --to <new-name> <list-name>" }
func (c *RenameListCmd) NeedsAuth() bool   { return true }

func (c *RenameListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.to, "to", "", "")
}

func (c *RenameListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(c.to)
	if name == "" {
		fmt.Fprintln(errOut, "error: new name required (--to)")
		return exitcode.UserError
	}

	list, code := resolveListArg(sess, args, errOut)
	if code != exitcode.Success {
		return code
	}
	if model.IsDateListID(list.ID) {
		fmt.Fprintln(errOut, "error: cannot rename date list")
		return exitcode.UserError
	}

	sess.Dispatch(ctx, model.RenameList{ListID: list.ID, Name: name})

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
