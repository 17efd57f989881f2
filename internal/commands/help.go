package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/taskflow"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }
func (c *HelpCmd) Session() bool     { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, _ *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	WriteHelp(out, DefaultRegistry)
	return exitcode.Success
}

// WriteHelp prints usage for every command in r.
func WriteHelp(w io.Writer, r *Registry) {
	fmt.Fprint(w, helpHeader)

	fmt.Fprintln(w, "Commands:")
	for _, cmd := range r.Filter(false) {
		fmt.Fprintf(w, "  %-12s %s\n", cmd.Name(), cmd.Synopsis())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session commands (one per line in a run script):")
	for _, cmd := range r.Filter(true) {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %s\n      %s\n", cmd.Usage(), synopsis)
	}

	fmt.Fprint(w, helpFooter)
}

const helpHeader = `Usage:
  taskflow                                  Run the built-in example
  taskflow <command> [common flags] [args]
  taskflow run [common flags] [<script>|-]  Run session commands from a script or stdin

`

const helpFooter = `
Common flags:
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --format <fmt>   Output format: text or json
`
