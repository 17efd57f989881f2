package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"taskflow/internal/commands"
	"taskflow/internal/config"
	"taskflow/internal/exitcode"
	"taskflow/internal/taskflow"
)

// stdinName selects standard input as the script source.
const stdinName = "-"

// runScript executes session commands, one per line, against a single
// TaskFlow. The flags given to run become defaults for every line.
// Execution stops at the first failing line.
func (d *Dispatcher) runScript(ctx context.Context, base config.Config, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := newFlagSet(commands.ReservedName, &base)
	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}
	if base.Format != "" {
		if err := config.ValidateFormat(base.Format); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	positional := fs.Args()
	if len(positional) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", positional[1])
		return exitcode.UserError
	}

	src := in
	name := stdinName
	if len(positional) == 1 && positional[0] != stdinName {
		name = positional[0]
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(errOut, "error: cannot open script: %v\n", err)
			return exitcode.IOError
		}
		defer f.Close()
		src = f
	}
	if src == nil {
		src = strings.NewReader("")
	}

	logger := newLogger(&base, errOut)
	logger.Info("session started", "script", name)

	flow := taskflow.New(taskflow.WithClock(d.clock))

	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if err := ctx.Err(); err != nil {
			fmt.Fprintf(errOut, "error: line %d: interrupted\n", lineNo)
			return exitcode.Interrupted
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parser := shellwords.NewParser()
		words, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: line %d: %v\n", lineNo, err)
			return exitcode.UserError
		}
		// The parser stops at the first unquoted ; & | < or > and drops the rest.
		if parser.Position >= 0 {
			fmt.Fprintf(errOut, "error: line %d: unquoted shell operator\n", lineNo)
			return exitcode.UserError
		}
		if len(words) == 0 {
			continue
		}

		if code := d.runLine(ctx, base, flow, lineNo, words, out, errOut); code != exitcode.Success {
			return code
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: reading script: %v\n", err)
		return exitcode.IOError
	}

	logger.Info("session finished", "lines", lineNo, "tasks", flow.Len())
	return exitcode.Success
}

// runLine dispatches one script line. Errors the command prints are
// rewritten to carry the line number.
func (d *Dispatcher) runLine(ctx context.Context, base config.Config, flow *taskflow.TaskFlow, lineNo int, words []string, out, errOut io.Writer) int {
	name := words[0]
	if name == commands.ReservedName {
		fmt.Fprintf(errOut, "error: line %d: %s cannot be nested\n", lineNo, commands.ReservedName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: line %d: unknown command: %s\n", lineNo, name)
		return exitcode.UserError
	}

	var lineErr bytes.Buffer
	code := d.dispatchCommand(ctx, base, cmd, words[1:], flow, out, &lineErr)
	writeLineErrors(errOut, lineNo, lineErr.Bytes())
	return code
}

// writeLineErrors copies captured stderr, inserting the line number after
// every "error: " prefix.
func writeLineErrors(w io.Writer, lineNo int, captured []byte) {
	if len(captured) == 0 {
		return
	}
	prefix := fmt.Sprintf("error: line %d: ", lineNo)
	for _, l := range strings.SplitAfter(string(captured), "\n") {
		if l == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(l, "error: "); ok {
			l = prefix + rest
		}
		io.WriteString(w, l)
	}
}
