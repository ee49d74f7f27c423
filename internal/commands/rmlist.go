package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/session"
)

func init() {
	Register(&RmListCmd{})
}

// RmListCmd implements the rmlist command.
type RmListCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *RmListCmd) SetForce(force bool) {
	c.force = force
}

func (c *RmListCmd) Name() string      { return "rmlist" }
func (c *RmListCmd) Aliases() []string { return nil }
func (c *RmListCmd) Synopsis() string  { return "Delete a list" }
func (c *RmListCmd) Usage() string     { return "kanbanist rmlist [--force] <list-name>" }
func (c *RmListCmd) NeedsAuth() bool   { return true }

func (c *RmListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

// Run deletes the list. Items keep their other lists; items left in no list
// fall back to the backlog on the next refresh.
func (c *RmListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	list, code := resolveListArg(sess, args, errOut)
	if code != exitcode.Success {
		return code
	}

	if list.IsBacklog() {
		fmt.Fprintln(errOut, "error: cannot delete backlog")
		return exitcode.UserError
	}
	if model.IsDateListID(list.ID) {
		fmt.Fprintln(errOut, "error: cannot delete date list")
		return exitcode.UserError
	}

	if !c.force && len(list.Items) > 0 {
		fmt.Fprintln(errOut, "error: list not empty (use --force)")
		return exitcode.UserError
	}

	sess.Dispatch(ctx, model.DeleteList{ListID: list.ID})

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
