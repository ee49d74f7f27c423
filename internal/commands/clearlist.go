package commands

import (
	"context"
	"flag"
	"io"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/session"
)

func init() {
	Register(&ClearListCmd{})
}

// ClearListCmd implements the clearlist command: it completes every item in
// a list in one remote request.
type ClearListCmd struct{}

func (c *ClearListCmd) Name() string      { return "clearlist" }
func (c *ClearListCmd) Aliases() []string { return nil }
func (c *ClearListCmd) Synopsis() string  { return "Complete every item in a list" }
func (c *ClearListCmd) Usage() string     { return "kanbanist clearlist [common flags] <list-name>" }
func (c *ClearListCmd) NeedsAuth() bool   { return true }

func (c *ClearListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	list, code := resolveListArg(sess, args, errOut)
	if code != exitcode.Success {
		return code
	}

	sess.Dispatch(ctx, model.CompleteList{ListID: list.ID})

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
