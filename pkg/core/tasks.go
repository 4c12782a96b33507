package core

import (
	"context"
	"fmt"
	"log/slog"
)

// TaskManager handles the business logic for the task store.
type TaskManager struct {
	*Collection[Task]
}

// NewTaskManager creates an empty task store backed by repo.
func NewTaskManager(repo Repository[Task], logger *slog.Logger) *TaskManager {
	return &TaskManager{Collection: NewCollection("task", repo, logger)}
}

// AddTask builds, validates and stores a task with the given attributes.
func (m *TaskManager) AddTask(ctx context.Context, id int, name string, opts ...TaskOption) error {
	return m.Add(ctx, NewTask(id, name, opts...))
}

// Search returns the tasks whose field equals value exactly.
func (m *TaskManager) Search(field, value string) ([]Task, error) {
	return m.SearchByAttribute(TaskFields, field, value)
}

// SearchByTask returns the tasks with the given name.
func (m *TaskManager) SearchByTask(name string) ([]Task, error) {
	return m.match(func(t Task) bool { return t.Name == name }, "no existing task entries with this name")
}

// SearchByDeadline returns the tasks due on deadline.
func (m *TaskManager) SearchByDeadline(deadline string) ([]Task, error) {
	return m.match(func(t Task) bool { return t.Deadline == deadline }, "no task entries with this deadline")
}

// Completed returns the finished tasks.
func (m *TaskManager) Completed() ([]Task, error) {
	return m.match(Task.Done, "no finished tasks")
}

// Pending returns the unfinished tasks.
func (m *TaskManager) Pending() ([]Task, error) {
	return m.match(func(t Task) bool { return t.Status == StatusNotDone }, "all tasks are completed")
}

// MarkDone completes the task with the given id.
func (m *TaskManager) MarkDone(ctx context.Context, id int) (Task, error) {
	return m.Update(ctx, id, (*Task).MarkDone)
}

// MarkUndone reopens the task with the given id. Reopening an undone task
// succeeds without touching the document.
func (m *TaskManager) MarkUndone(ctx context.Context, id int) (Task, error) {
	return m.Update(ctx, id, (*Task).MarkUndone)
}

// DisplayAll returns every task in insertion order.
func (m *TaskManager) DisplayAll() []Task {
	return m.List()
}

func (m *TaskManager) match(pred func(Task) bool, reason string) ([]Task, error) {
	found := m.Filter(pred)
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, reason)
	}
	return found, nil
}
