package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"taskflow/internal/commands"
	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/taskflow"
)

// DefaultCommand runs when no arguments are given.
const DefaultCommand = "demo"

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	clock    taskflow.Clock
	getenv   func(string) string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the time source for session task flows.
func WithClock(c taskflow.Clock) Option {
	return func(d *Dispatcher) { d.clock = c }
}

// WithEnv sets the environment lookup used for config defaults.
func WithEnv(getenv func(string) string) Option {
	return func(d *Dispatcher) { d.getenv = getenv }
}

// NewDispatcher creates a new dispatcher for the commands in registry.
func NewDispatcher(registry *commands.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		clock:    taskflow.SystemClock,
		getenv:   os.Getenv,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run parses arguments and dispatches to the appropriate command.
// in is read only by `run` when the script comes from stdin.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	base, err := config.FromEnv(d.getenv)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// No args -> run the demo
	if len(args) == 0 {
		args = []string{DefaultCommand}
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmdName == commands.ReservedName {
		return d.runScript(ctx, *base, args[1:], in, out, errOut)
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	// Outside a script each invocation would get a throwaway flow.
	if cmd.Session() {
		fmt.Fprintf(errOut, "error: %s only runs inside a session (see: %s help)\n", cmd.Name(), config.AppName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, *base, cmd, args[1:], nil, out, errOut)
}

// dispatchCommand parses flags for cmd on top of base and runs it.
// flow is handed to session commands; standalone commands get nil.
func (d *Dispatcher) dispatchCommand(ctx context.Context, base config.Config, cmd commands.Command, args []string, flow *taskflow.TaskFlow, out, errOut io.Writer) int {
	cfg := base
	fs := newFlagSet(cmd.Name(), &cfg)

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	if cfg.Format != "" {
		if err := config.ValidateFormat(cfg.Format); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	logger := newLogger(&cfg, errOut)
	ctx = logr.NewContext(ctx, logger)
	logger.Info("dispatch", "command", cmd.Name(), "args", positionalArgs)

	var cmdFlow *taskflow.TaskFlow
	if cmd.Session() {
		cmdFlow = flow
	}
	return cmd.Run(ctx, &cfg, cmdFlow, positionalArgs, out, errOut)
}

// newFlagSet creates a flag set carrying the common flags, bound to cfg.
func newFlagSet(name string, cfg *config.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "")
	return fs
}

// reportFlagError prints a flag parse error and returns the exit code.
func reportFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "flag needs an argument") {
		flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}

// newLogger returns a stderr logger when debug is on, otherwise a no-op.
func newLogger(cfg *config.Config, errOut io.Writer) logr.Logger {
	if !cfg.Debug {
		return logr.Discard()
	}
	return stdr.New(log.New(errOut, "debug: ", 0)).WithName(config.AppName)
}
