package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/output"
	"taskflow/internal/taskflow"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd writes the session's tasks as a Google Tasks JSON collection.
type ExportCmd struct {
	status string
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks as Google Tasks JSON" }
func (c *ExportCmd) Usage() string     { return "export [--status all|pending|completed]" }
func (c *ExportCmd) Session() bool     { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "all", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, flow *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	status, err := parseStatusFilter(c.status)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	logr.FromContextOrDiscard(ctx).Info("exporting tasks", "status", c.status, "total", flow.Len())

	if err := output.WriteGoogleTasks(out, flow, status); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	return exitcode.Success
}
