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
	Register(&ShowCmd{})
}

// ShowCmd prints one serialized task. JSON unless --format text is given.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Print a task's fields" }
func (c *ShowCmd) Usage() string     { return "show <n>" }
func (c *ShowCmd) Session() bool     { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, flow *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	_, task, err := ResolveTask(flow, args)
	if err != nil {
		return reportTaskRefError(errOut, err)
	}

	if cfg.FormatOr(config.FormatJSON) == config.FormatText {
		err = output.WriteTaskText(out, task)
	} else {
		err = output.WriteTaskJSON(out, task)
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	return exitcode.Success
}
