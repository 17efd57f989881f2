package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	tasks "google.golang.org/api/tasks/v1"

	"taskflow/internal/output"
	"taskflow/internal/taskflow"
	"taskflow/internal/testutil"
)

func newExportFlow() *taskflow.TaskFlow {
	flow := taskflow.New(taskflow.WithClock(testutil.NewFakeClock()))
	flow.AddTask("Setup project", "Initialize the project structure").Complete()
	flow.AddTask("Write documentation", "Create README and API docs")
	return flow
}

func TestToGoogleTask_Pending(t *testing.T) {
	task := taskflow.NewTask(testutil.NewFakeClock(), "Write documentation", "Create README and API docs")

	gt := output.ToGoogleTask(1, task)

	if gt.Kind != output.GoogleTaskKind {
		t.Errorf("expected kind %q, got %q", output.GoogleTaskKind, gt.Kind)
	}
	if gt.Title != "Write documentation" || gt.Notes != "Create README and API docs" {
		t.Errorf("unexpected title/notes %q / %q", gt.Title, gt.Notes)
	}
	if gt.Status != output.GoogleStatusNeedsAction {
		t.Errorf("expected status %q, got %q", output.GoogleStatusNeedsAction, gt.Status)
	}
	if gt.Completed != nil {
		t.Errorf("expected no completed time, got %q", *gt.Completed)
	}
	if gt.Updated != "2024-03-01T09:00:00.000Z" {
		t.Errorf("unexpected updated %q", gt.Updated)
	}
}

func TestToGoogleTask_Completed(t *testing.T) {
	task := taskflow.NewTask(testutil.NewFakeClock(), "Setup project", "")
	task.Complete()

	gt := output.ToGoogleTask(1, task)

	if gt.Status != output.GoogleStatusCompleted {
		t.Errorf("expected status %q, got %q", output.GoogleStatusCompleted, gt.Status)
	}
	if gt.Completed == nil || *gt.Completed != "2024-03-01T09:00:01.000Z" {
		t.Errorf("unexpected completed time %v", gt.Completed)
	}
	if gt.Updated != "2024-03-01T09:00:01.000Z" {
		t.Errorf("expected updated to follow completion, got %q", gt.Updated)
	}
}

func TestGoogleTaskID_StableAndDistinct(t *testing.T) {
	flow := newExportFlow()
	first, _ := flow.Task(1)
	second, _ := flow.Task(2)

	id := output.GoogleTaskID(1, first)
	if id != output.GoogleTaskID(1, first) {
		t.Error("expected the same id for the same task and position")
	}
	if id == output.GoogleTaskID(2, second) {
		t.Error("expected different tasks to get different ids")
	}
	if id == output.GoogleTaskID(2, first) {
		t.Error("expected position to contribute to the id")
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("id is not a uuid: %v", err)
	}
	if parsed.Version() != 5 {
		t.Errorf("expected name-based SHA-1 uuid (version 5), got version %d", parsed.Version())
	}
}

func TestWriteGoogleTasks(t *testing.T) {
	flow := newExportFlow()

	var buf bytes.Buffer
	if err := output.WriteGoogleTasks(&buf, flow, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got tasks.Tasks
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("export is not valid JSON: %v\n%s", err, buf.String())
	}
	if got.Kind != output.GoogleTasksKind {
		t.Errorf("expected kind %q, got %q", output.GoogleTasksKind, got.Kind)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].Title != "Setup project" || got.Items[0].Status != output.GoogleStatusCompleted {
		t.Errorf("unexpected first item %+v", got.Items[0])
	}
	if got.Items[1].Title != "Write documentation" || got.Items[1].Status != output.GoogleStatusNeedsAction {
		t.Errorf("unexpected second item %+v", got.Items[1])
	}
	if got.Items[0].Id == got.Items[1].Id {
		t.Error("expected distinct ids")
	}
}

func TestToGoogleTasks_StatusFilterKeepsFlowIDs(t *testing.T) {
	flow := newExportFlow()
	second, _ := flow.Task(2)

	coll := output.ToGoogleTasks(flow, taskflow.StatusPending)

	if len(coll.Items) != 1 {
		t.Fatalf("expected 1 pending item, got %d", len(coll.Items))
	}
	if coll.Items[0].Id != output.GoogleTaskID(2, second) {
		t.Errorf("expected id derived from flow position 2")
	}
}

func TestToGoogleTasks_Empty(t *testing.T) {
	coll := output.ToGoogleTasks(taskflow.New(), "")

	if coll.Kind != output.GoogleTasksKind {
		t.Errorf("expected kind %q, got %q", output.GoogleTasksKind, coll.Kind)
	}
	if len(coll.Items) != 0 {
		t.Errorf("expected no items, got %d", len(coll.Items))
	}
}
