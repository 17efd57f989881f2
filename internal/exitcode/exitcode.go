// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task not found).
	UserError = 1

	// IOError indicates a failure reading input or writing output.
	IOError = 2
)

// Interrupted indicates the run was cancelled by a signal.
const Interrupted = 130
