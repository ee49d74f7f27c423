package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/pbozzay/kanbanist/internal/config"
	"github.com/pbozzay/kanbanist/internal/exitcode"
	"github.com/pbozzay/kanbanist/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "kanbanist help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  kanbanist                                      List all open items
  kanbanist list [common flags] <list-name>      List items in a specific list
  kanbanist add [common flags] [--list <list-name>] <content...>
  kanbanist create [common flags] [--list <list-name>] <content...>
  kanbanist done [common flags] <ref>...
  kanbanist edit [common flags] [--due <date> | --no-due] <ref> [content...]
  kanbanist move [common flags] [--at <n>] <ref> <list-name>
  kanbanist lists [common flags]
  kanbanist createlist [common flags] <list-name>
  kanbanist addlist [common flags] <list-name>
  kanbanist renamelist [common flags] --to <new-name> <list-name>
  kanbanist rmlist [common flags] [--force] <list-name>
  kanbanist clearlist [common flags] <list-name>
  kanbanist reorder [common flags] --to <n> <list-name>
  kanbanist help
  kanbanist version

References:
  3      third item in the backlog
  b2     second item in list b, as printed by kanbanist

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Authentication:
  Set KANBANIST_TOKEN or store {"access_token": "..."} in token.json
  in the config directory.
`
