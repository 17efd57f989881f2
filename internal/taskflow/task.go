// Package taskflow holds an ordered, in-memory list of tasks.
//
// Nothing in this package is safe for concurrent use. A TaskFlow and the
// tasks it hands out belong to a single caller; callers that need to share
// them across goroutines must serialize access themselves.
package taskflow

import "time"

// TimeLayout is the textual format of timestamps in serialized tasks.
const TimeLayout = time.RFC3339Nano

// Status is the completion state of a task.
type Status string

const (
	// StatusPending marks work not yet done.
	StatusPending Status = "pending"

	// StatusCompleted marks finished work with a recorded completion time.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Task is a single unit of work.
// Title, description and creation time are fixed at construction.
type Task struct {
	title       string
	description string
	status      Status
	createdAt   time.Time
	completedAt *time.Time

	clock Clock
}

// NewTask creates a pending task stamped with clock's current time.
// A nil clock means SystemClock. Title and description are stored as given;
// an empty title is accepted.
func NewTask(clock Clock, title, description string) *Task {
	if clock == nil {
		clock = SystemClock
	}
	return &Task{
		title:       title,
		description: description,
		status:      StatusPending,
		createdAt:   clock.Now(),
		clock:       clock,
	}
}

func (t *Task) Title() string        { return t.title }
func (t *Task) Description() string  { return t.description }
func (t *Task) Status() Status       { return t.status }
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// CompletedAt returns the completion time and whether the task has one.
func (t *Task) CompletedAt() (time.Time, bool) {
	if t.completedAt == nil {
		return time.Time{}, false
	}
	return *t.completedAt, true
}

// IsPending reports whether the task is still pending.
func (t *Task) IsPending() bool { return t.status == StatusPending }

// IsCompleted reports whether the task has been completed.
func (t *Task) IsCompleted() bool { return t.status == StatusCompleted }

// Complete marks the task completed at the clock's current time.
// There is no guard against re-completion: calling Complete again moves the
// completion time forward. A task without a clock uses SystemClock.
func (t *Task) Complete() {
	clock := t.clock
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	t.status = StatusCompleted
	t.completedAt = &now
}

// Serialize returns the task as a plain mapping with the keys title,
// description, status, created_at and completed_at. Timestamps use
// TimeLayout; completed_at is nil while the task is pending.
func (t *Task) Serialize() map[string]any {
	var completedAt any
	if t.completedAt != nil {
		completedAt = t.completedAt.Format(TimeLayout)
	}
	return map[string]any{
		"title":        t.title,
		"description":  t.description,
		"status":       string(t.status),
		"created_at":   t.createdAt.Format(TimeLayout),
		"completed_at": completedAt,
	}
}
