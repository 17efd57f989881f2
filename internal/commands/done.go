package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/taskflow"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "done <n>" }
func (c *DoneCmd) Session() bool     { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, flow *taskflow.TaskFlow, args []string, out, errOut io.Writer) int {
	num, task, err := ResolveTask(flow, args)
	if err != nil {
		return reportTaskRefError(errOut, err)
	}

	log := logr.FromContextOrDiscard(ctx)
	if task.IsCompleted() {
		log.Info("task already completed, moving completion time", "num", num)
	}

	// Re-completing is allowed and moves completed_at forward.
	task.Complete()

	completedAt, _ := task.CompletedAt()
	log.Info("task completed", "num", num, "completedAt", completedAt.Format(taskflow.TimeLayout))

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// reportTaskRefError prints a task reference error and returns the exit code.
func reportTaskRefError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
