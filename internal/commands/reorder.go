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
	Register(&ReorderCmd{})
}

// ReorderCmd implements the reorder command.
type ReorderCmd struct {
	position int
}

// SetPosition sets the 1-based target position (for testing).
func (c *ReorderCmd) SetPosition(pos int) { c.position = pos }

func (c *ReorderCmd) Name() string      { return "reorder" }
func (c *ReorderCmd) Aliases() []string { return nil }
func (c *ReorderCmd) Synopsis() string  { return "Move a list to another position" }
func (c *ReorderCmd) Usage() string     { return "kanbanist reorder --to <n> <list-name>" }
func (c *ReorderCmd) NeedsAuth() bool   { return true }

func (c *ReorderCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.position, "to", 0, "")
}

func (c *ReorderCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if c.position < 1 {
		fmt.Fprintf(errOut, "error: invalid position: %d\n", c.position)
		return exitcode.UserError
	}

	list, code := resolveListArg(sess, args, errOut)
	if code != exitcode.Success {
		return code
	}
	if list.IsBacklog() {
		fmt.Fprintln(errOut, "error: cannot reorder backlog")
		return exitcode.UserError
	}

	// Positions past the end are clamped to the last slot.
	sess.Dispatch(ctx, model.ReorderList{ListID: list.ID, NewIndex: c.position - 1})

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
