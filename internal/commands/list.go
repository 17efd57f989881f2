package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/output"
	"taskflow/internal/taskflow"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Tasks are numbered by their position in the whole flow, so the numbers
// shown under a status filter still work with done and show.
type ListCmd struct {
	status string
}

// SetStatus sets the status filter (for testing).
func (c *ListCmd) SetStatus(status string) {
	c.status = status
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "list [--status all|pending|completed]" }
func (c *ListCmd) Session() bool     { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, flow *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	status, err := parseStatusFilter(c.status)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if cfg.FormatOr(config.FormatText) == config.FormatJSON {
		selected := flow.Tasks()
		if status != "" {
			selected = flow.Filter(status)
		}
		if err := output.WriteTasksJSON(out, selected); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.IOError
		}
		return exitcode.Success
	}

	printed := 0
	for i, task := range flow.Tasks() {
		if status != "" && task.Status() != status {
			continue
		}
		output.FormatTask(out, i+1, task)
		printed++
	}

	if printed == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
