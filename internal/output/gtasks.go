package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	tasks "google.golang.org/api/tasks/v1"

	"taskflow/internal/taskflow"
)

const (
	// GoogleTaskKind is the resource kind of a single exported task.
	GoogleTaskKind = "tasks#task"

	// GoogleTasksKind is the resource kind of the exported collection.
	GoogleTasksKind = "tasks#tasks"

	// Google Tasks status values.
	GoogleStatusNeedsAction = "needsAction"
	GoogleStatusCompleted   = "completed"

	// googleTimeLayout is RFC 3339 in UTC with millisecond precision, as
	// the Tasks API emits it.
	googleTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

var exportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:taskflow:export"))

// GoogleTaskID derives a stable id for the task at position num.
// The same position, title and creation time always yield the same id.
func GoogleTaskID(num int, task *taskflow.Task) string {
	name := strconv.Itoa(num) + "\x00" + task.Title() + "\x00" + task.CreatedAt().UTC().Format(taskflow.TimeLayout)
	return uuid.NewSHA1(exportNamespace, []byte(name)).String()
}

// ToGoogleTask converts the task at position num to a Google Tasks resource.
func ToGoogleTask(num int, task *taskflow.Task) *tasks.Task {
	gt := &tasks.Task{
		Kind:    GoogleTaskKind,
		Id:      GoogleTaskID(num, task),
		Title:   task.Title(),
		Notes:   task.Description(),
		Status:  GoogleStatusNeedsAction,
		Updated: task.CreatedAt().UTC().Format(googleTimeLayout),
	}
	if completedAt, ok := task.CompletedAt(); ok {
		ts := completedAt.UTC().Format(googleTimeLayout)
		gt.Status = GoogleStatusCompleted
		gt.Completed = &ts
		gt.Updated = ts
	}
	return gt
}

// ToGoogleTasks converts the flow's tasks to a Google Tasks collection.
// An empty status exports every task; otherwise only tasks with that status.
// Ids are derived from each task's position in the whole flow.
func ToGoogleTasks(flow *taskflow.TaskFlow, status taskflow.Status) *tasks.Tasks {
	coll := &tasks.Tasks{
		Kind:  GoogleTasksKind,
		Items: []*tasks.Task{},
	}
	for i, task := range flow.Tasks() {
		if status != "" && task.Status() != status {
			continue
		}
		coll.Items = append(coll.Items, ToGoogleTask(i+1, task))
	}
	return coll
}

// WriteGoogleTasks writes the flow as an indented Google Tasks JSON collection.
func WriteGoogleTasks(w io.Writer, flow *taskflow.TaskFlow, status taskflow.Status) error {
	data, err := json.MarshalIndent(ToGoogleTasks(flow, status), "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
