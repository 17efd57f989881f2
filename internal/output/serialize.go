package output

import (
	"encoding/json"
	"fmt"
	"io"

	"taskflow/internal/taskflow"
)

// fieldOrder is the display order of serialized task keys in text output.
var fieldOrder = []string{"title", "description", "status", "created_at", "completed_at"}

// WriteTaskJSON writes the serialized task as indented JSON.
func WriteTaskJSON(w io.Writer, task *taskflow.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(task.Serialize()); err != nil {
		return fmt.Errorf("encode task: %w", err)
	}
	return nil
}

// WriteTaskText writes the serialized task as "key: value" lines.
// An absent value is shown as "-".
func WriteTaskText(w io.Writer, task *taskflow.Task) error {
	m := task.Serialize()
	for _, key := range fieldOrder {
		v := m[key]
		if v == nil {
			v = "-"
		}
		if _, err := fmt.Fprintf(w, "%s: %v\n", key, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteTasksJSON writes the serialized tasks as an indented JSON array.
func WriteTasksJSON(w io.Writer, tasks []*taskflow.Task) error {
	records := make([]map[string]any, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, task.Serialize())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}
