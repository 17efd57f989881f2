// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskflow/internal/config"
	"taskflow/internal/taskflow"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Session returns true if the command works on the session's TaskFlow.
	// Session commands only run inside `taskflow run`.
	Session() bool

	// RegisterFlags registers command-specific flags.
	// It is called before every invocation, so flag defaults reset each time.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// flow is nil if Session() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, flow *taskflow.TaskFlow, args []string, out, errOut io.Writer) int
}
