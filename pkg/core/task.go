package core

import (
	"fmt"
	"strconv"
)

// Task statuses and the deadline sentinel.
const (
	StatusDone    = "Done"
	StatusNotDone = "Not done"

	// NoDeadline is accepted in place of a date and is the default deadline.
	NoDeadline = "No Deadline"
)

// Task is an actionable entry with an optional deadline.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"task" yaml:"task"`
	Description string `json:"description" yaml:"description"`
	Deadline    string `json:"deadline" yaml:"deadline"`
	Status      string `json:"status" yaml:"status"`
}

// TaskOption sets an optional task attribute.
type TaskOption func(*Task)

func WithDescription(description string) TaskOption {
	return func(t *Task) {
		t.Description = description
	}
}

func WithDeadline(deadline string) TaskOption {
	return func(t *Task) {
		t.Deadline = deadline
	}
}

func WithStatus(status string) TaskOption {
	return func(t *Task) {
		t.Status = status
	}
}

// NewTask builds a task with defaults applied. It does not validate.
func NewTask(id int, name string, opts ...TaskOption) Task {
	t := Task{
		ID:       id,
		Name:     name,
		Deadline: NoDeadline,
		Status:   StatusNotDone,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func (t Task) EntityID() int { return t.ID }

// Validate runs the id, task, deadline and status checks and reports every
// failure. The deadline check accepts NoDeadline as well as a real date.
func (t Task) Validate() error {
	return runValidators("task",
		func() string { return validateID(t.ID) },
		func() string { return validateNonEmpty("Task", t.Name) },
		func() string {
			if t.Deadline == NoDeadline {
				return ""
			}
			return validateDate(t.Deadline)
		},
		func() string {
			if t.Status != StatusDone && t.Status != StatusNotDone {
				return fmt.Sprintf("Status must be %q or %q.", StatusDone, StatusNotDone)
			}
			return ""
		},
	)
}

// Done reports whether the task is completed.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// MarkDone sets the status to Done and reports whether it changed.
func (t *Task) MarkDone() bool {
	changed := t.Status != StatusDone
	t.Status = StatusDone
	return changed
}

// MarkUndone sets the status to Not done. On an undone task it is a no-op.
func (t *Task) MarkUndone() bool {
	if t.Status == StatusNotDone {
		return false
	}
	t.Status = StatusNotDone
	return true
}

// Record returns the flat form used by the document format.
func (t Task) Record() Record {
	return Record{
		"id":          t.ID,
		"task":        t.Name,
		"description": t.Description,
		"deadline":    t.Deadline,
		"status":      t.Status,
	}
}

// TaskFromRecord rebuilds a task. Every key is required.
func TaskFromRecord(r Record) (Task, error) {
	var (
		t   Task
		err error
	)
	if t.ID, err = intField(r, "id"); err != nil {
		return Task{}, err
	}
	if t.Name, err = stringField(r, "task"); err != nil {
		return Task{}, err
	}
	if t.Description, err = stringField(r, "description"); err != nil {
		return Task{}, err
	}
	if t.Deadline, err = stringField(r, "deadline"); err != nil {
		return Task{}, err
	}
	if t.Status, err = stringField(r, "status"); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) String() string {
	return fmt.Sprintf("ID: %d, Task: %s, Description: %s, Deadline: %s, Status: %s",
		t.ID, t.Name, t.Description, t.Deadline, t.Status)
}

// TaskFields is the allow-list of searchable task fields.
var TaskFields = map[string]Field[Task]{
	"id":          func(t Task) string { return strconv.Itoa(t.ID) },
	"task":        func(t Task) string { return t.Name },
	"description": func(t Task) string { return t.Description },
	"deadline":    func(t Task) string { return t.Deadline },
	"status":      func(t Task) string { return t.Status },
}
