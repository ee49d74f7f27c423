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
	Register(&MoveCmd{})
}

// MoveCmd implements the move command.
type MoveCmd struct {
	position int
}

// SetPosition sets the 1-based position in the destination (for testing).
func (c *MoveCmd) SetPosition(pos int) { c.position = pos }

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return []string{"mv"} }
func (c *MoveCmd) Synopsis() string  { return "Move an item to another list" }
func (c *MoveCmd) Usage() string     { return "kanbanist move [--at <n>] <ref> <list-name...>" }
func (c *MoveCmd) NeedsAuth() bool   { return true }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.position, "at", 0, "")
}

func (c *MoveCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if c.position < 0 {
		fmt.Fprintf(errOut, "error: invalid position: %d\n", c.position)
		return exitcode.UserError
	}

	it, from, code := parseAndResolveRef(sess, args, errOut)
	if code != exitcode.Success {
		return code
	}
	to, code := resolveListArg(sess, args[1:], errOut)
	if code != exitcode.Success {
		return code
	}
	if to.ID == from.ID {
		fmt.Fprintf(errOut, "error: item already in list: %s\n", to.Title)
		return exitcode.UserError
	}

	// Zero position appends.
	sess.Dispatch(ctx, model.MoveItem{
		ItemID:     it.ID,
		FromListID: from.ID,
		ToListID:   to.ID,
		Index:      c.position - 1,
	})

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
