package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/taskflow"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(description string) {
	c.description = description
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "add [--description <text>] <title...>" }
func (c *AddCmd) Session() bool     { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, flow *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	// An explicit "" is an empty title; no args at all is a mistake.
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	title := strings.Join(args, " ")
	flow.AddTask(title, c.description)
	num := flow.Len()

	logr.FromContextOrDiscard(ctx).Info("task added", "num", num, "title", title)

	if !cfg.Quiet {
		fmt.Fprintf(out, "added %d\n", num)
	}
	return exitcode.Success
}
