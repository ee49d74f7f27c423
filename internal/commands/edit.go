package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/model"
	"github.com/pbozzay/kanbanist/internal/resolve"
	"github.com/pbozzay/kanbanist/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct {
	due   string
	noDue bool

	// now is overridden in tests.
	now func() time.Time
}

// SetDue sets the --due value (for testing).
func (c *EditCmd) SetDue(due string) { c.due = due }

// SetNoDue sets the --no-due flag (for testing).
func (c *EditCmd) SetNoDue(noDue bool) { c.noDue = noDue }

// SetNow sets the clock used to parse relative dates (for testing).
func (c *EditCmd) SetNow(now func() time.Time) { c.now = now }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change an item's content or due date" }
func (c *EditCmd) Usage() string {
	return "kanbanist edit [--due <date> | --no-due] <ref> [content...]"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.due, "due", "", "")
	fs.BoolVar(&c.noDue, "no-due", false, "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if c.due != "" && c.noDue {
		fmt.Fprintln(errOut, "error: cannot use both --due and --no-due")
		return exitcode.UserError
	}

	it, _, code := parseAndResolveRef(sess, args, errOut)
	if code != exitcode.Success {
		return code
	}

	ev := model.UpdateItem{ItemID: it.ID, Text: strings.TrimSpace(strings.Join(args[1:], " "))}
	switch {
	case c.noDue:
		ev.Due = &model.DueEdit{}
	case c.due != "":
		now := time.Now
		if c.now != nil {
			now = c.now
		}
		t, err := resolve.ParseDate(c.due, now())
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		date := t.Format(model.DateLayout)
		ev.Due = &model.DueEdit{Date: &date, String: c.due}
	}

	if ev.Text == "" && ev.Due == nil {
		fmt.Fprintln(errOut, "error: nothing to change")
		return exitcode.UserError
	}

	sess.Dispatch(ctx, ev)

	printOK(cfg.Quiet, out)
	return exitcode.Success
}
