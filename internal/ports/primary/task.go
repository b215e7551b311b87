package primary

import "context"

// TaskService defines the primary port for task operations.
type TaskService interface {
	// AddTask parses the raw fields and creates a task. Fails when a
	// task with the same name and description already exists.
	AddTask(ctx context.Context, req AddTaskRequest) (*Task, error)

	// ListTasks retrieves all tasks.
	ListTasks(ctx context.Context) ([]*Task, error)

	// MarkTaskDone marks the task at the given one-based index done.
	// The stored row is replaced wholesale.
	MarkTaskDone(ctx context.Context, oneBasedIndex string) (*Task, error)

	// UnmarkTaskDone clears the done flag of the task at the given
	// one-based index.
	UnmarkTaskDone(ctx context.Context, oneBasedIndex string) (*Task, error)

	// DeleteTask removes the task at the given one-based index.
	DeleteTask(ctx context.Context, oneBasedIndex string) (*Task, error)
}

// AddTaskRequest contains the raw fields for creating a task.
type AddTaskRequest struct {
	Name        string
	Description string
	Priority    string
}

// Task represents a task at the port boundary.
type Task struct {
	ID          string
	Name        string
	Description string
	Done        bool
	Priority    string
}
