package taskflow

// TaskFlow is the ordered collection of tasks tracked by one session.
// Tasks are kept in insertion order and are only ever appended.
type TaskFlow struct {
	clock Clock
	tasks []*Task
}

// Option configures a TaskFlow.
type Option func(*TaskFlow)

// WithClock sets the time source used for every task the flow creates.
func WithClock(c Clock) Option {
	return func(f *TaskFlow) {
		if c != nil {
			f.clock = c
		}
	}
}

// New creates an empty TaskFlow.
func New(opts ...Option) *TaskFlow {
	f := &TaskFlow{clock: SystemClock}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddTask creates a task, appends it to the flow and returns it.
// The returned task is live: completing it changes what the flow reports.
func (f *TaskFlow) AddTask(title, description string) *Task {
	task := NewTask(f.clock, title, description)
	f.tasks = append(f.tasks, task)
	return task
}

// Len returns the number of tasks added to the flow.
func (f *TaskFlow) Len() int { return len(f.tasks) }

// Tasks returns every task in insertion order.
// The slice is a copy; changing it does not change the flow.
func (f *TaskFlow) Tasks() []*Task {
	result := make([]*Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Task returns the n-th task (1-based, insertion order).
func (f *TaskFlow) Task(n int) (*Task, bool) {
	if n < 1 || n > len(f.tasks) {
		return nil, false
	}
	return f.tasks[n-1], true
}

// PendingTasks returns the pending tasks in insertion order.
func (f *TaskFlow) PendingTasks() []*Task {
	return f.Filter(StatusPending)
}

// CompletedTasks returns the completed tasks in insertion order.
func (f *TaskFlow) CompletedTasks() []*Task {
	return f.Filter(StatusCompleted)
}

// Filter returns the tasks with the given status in insertion order.
func (f *TaskFlow) Filter(status Status) []*Task {
	result := make([]*Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		if task.status == status {
			result = append(result, task)
		}
	}
	return result
}
