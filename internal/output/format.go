// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskflow/internal/taskflow"
)

// FormatTask formats a task line for list output.
// Format: "{N:>4}  [ ] {TITLE}\n", with "[x]" for completed tasks.
func FormatTask(w io.Writer, num int, task *taskflow.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(task), normalizeTitle(task.Title()))
}

// FormatSummary prints the total and pending counts.
func FormatSummary(w io.Writer, flow *taskflow.TaskFlow) {
	fmt.Fprintf(w, "Total tasks: %d\n", flow.Len())
	fmt.Fprintf(w, "Pending: %d\n", len(flow.PendingTasks()))
}

// FormatStats prints the summary followed by the completed count.
func FormatStats(w io.Writer, flow *taskflow.TaskFlow) {
	FormatSummary(w, flow)
	fmt.Fprintf(w, "Completed: %d\n", len(flow.CompletedTasks()))
}

func checkbox(task *taskflow.Task) string {
	if task.IsCompleted() {
		return "[x]"
	}
	return "[ ]"
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
