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
	Register(&DemoCmd{})
}

// DemoCmd adds two fixed tasks to a fresh flow and prints the counts.
type DemoCmd struct{}

func (c *DemoCmd) Name() string      { return "demo" }
func (c *DemoCmd) Aliases() []string { return nil }
func (c *DemoCmd) Synopsis() string  { return "Run the built-in example" }
func (c *DemoCmd) Usage() string     { return "demo" }
func (c *DemoCmd) Session() bool     { return false }

func (c *DemoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DemoCmd) Run(ctx context.Context, cfg *config.Config, _ *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	flow := taskflow.New()
	flow.AddTask("Setup project", "Initialize the project structure")
	flow.AddTask("Write documentation", "Create README and API docs")

	output.FormatSummary(out, flow)
	return exitcode.Success
}
