package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/output"
	"github.com/pbozzay/kanbanist/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `kanbanist` (no args) and `kanbanist list <list-name>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List items" }
func (c *ListCmd) Usage() string     { return "kanbanist list [<list-name>]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return c.listAll(cfg, sess, out, errOut)
	}
	return c.listOne(sess, strings.Join(args, " "), out, errOut)
}

// listAll prints the backlog without a header, then every list holding items
// under its letter.
func (c *ListCmd) listAll(cfg *config.Config, sess *session.Session, out, errOut io.Writer) int {
	snap := sess.Snapshot()
	hasAnyItems := false

	for i, it := range snap.Backlog.Items {
		output.FormatItem(out, i+1, it)
		hasAnyItems = true
	}

	nonEmpty := 0
	for _, l := range snap.Lists {
		if len(l.Items) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty > maxLetters {
		fmt.Fprintf(errOut, "warning: only the first %d lists with items are shown\n", maxLetters)
	}

	letter := 'a'
	for _, l := range LetteredLists(snap) {
		output.FormatListHeader(out, l.Title, false)
		for i, it := range l.Items {
			output.FormatItemWithLetter(out, letter, i+1, it)
		}
		letter++
		hasAnyItems = true
	}

	if !hasAnyItems && !cfg.Quiet {
		fmt.Fprintln(out, "no items found")
	}
	return exitcode.Success
}

// listOne prints a single list, even when empty.
func (c *ListCmd) listOne(sess *session.Session, name string, out, errOut io.Writer) int {
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}
	list, code := resolveListName(sess, name, errOut)
	if code != exitcode.Success {
		return code
	}

	output.FormatListHeader(out, list.Title, list.IsBacklog())
	for i, it := range list.Items {
		output.FormatItemIndented(out, i+1, it)
	}
	return exitcode.Success
}
