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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark items completed" }
func (c *DoneCmd) Usage() string     { return "kanbanist done <ref>..." }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Resolve every reference before completing any: numbering shifts as
	// items leave their lists.
	snap := sess.Snapshot()
	ids := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		it, _, code := resolveRefOrReport(snap, ref, errOut)
		if code != exitcode.Success {
			return code
		}
		if !seen[it.ID] {
			seen[it.ID] = true
			ids = append(ids, it.ID)
		}
	}

	for _, id := range ids {
		sess.Dispatch(ctx, model.CompleteItem{ItemID: id})
	}

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
