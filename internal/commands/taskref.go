package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskflow/internal/taskflow"
)

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrInvalidTaskRef indicates the reference is not a task number.
	ErrInvalidTaskRef = errors.New("invalid task reference")

	// ErrTaskOutOfRange indicates the number does not name a task in the flow.
	ErrTaskOutOfRange = errors.New("task number out of range")
)

// ParseTaskRef parses a 1-based task number from the first positional arg.
// Task numbers count every task in insertion order, whatever its status.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("%w: unexpected argument: %s", ErrInvalidTaskRef, args[1])
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, ref)
	}
	return num, nil
}

// ResolveTask parses the task reference in args and looks it up in flow.
func ResolveTask(flow *taskflow.TaskFlow, args []string) (int, *taskflow.Task, error) {
	num, err := ParseTaskRef(args)
	if err != nil {
		return 0, nil, err
	}
	task, ok := flow.Task(num)
	if !ok {
		return num, nil, fmt.Errorf("%w: %d", ErrTaskOutOfRange, num)
	}
	return num, task, nil
}

// parseStatusFilter maps a --status value to a status; "all" maps to "".
func parseStatusFilter(s string) (taskflow.Status, error) {
	if s == "" || s == "all" {
		return "", nil
	}
	status := taskflow.Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
