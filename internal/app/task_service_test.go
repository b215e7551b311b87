package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/tally/internal/model"
	"github.com/example/tally/internal/parser"
	"github.com/example/tally/internal/ports/primary"
)

func TestAddTask(t *testing.T) {
	repo := newMockTaskRepository()
	service := NewTaskService(repo)
	ctx := context.Background()

	task, err := service.AddTask(ctx, primary.AddTaskRequest{
		Name:        "Grade papers",
		Description: "grading",
		Priority:    "high",
	})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if task.ID != "TASK-001" || task.Done || task.Priority != "high" {
		t.Errorf("AddTask() = %+v, want new undone high-priority task", task)
	}
}

func TestAddTaskDefaultsPriority(t *testing.T) {
	repo := newMockTaskRepository()
	service := NewTaskService(repo)

	task, err := service.AddTask(context.Background(), primary.AddTaskRequest{
		Name:        "Grade papers",
		Description: "grading",
	})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if task.Priority != model.PriorityLow {
		t.Errorf("Priority = %q, want %q", task.Priority, model.PriorityLow)
	}
}

func TestAddTaskRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		req     primary.AddTaskRequest
		wantMsg string
	}{
		{
			name:    "invalid name",
			req:     primary.AddTaskRequest{Name: "do this!", Description: "grading"},
			wantMsg: model.TaskNameConstraints,
		},
		{
			name:    "invalid description",
			req:     primary.AddTaskRequest{Name: "Grade papers", Description: "two words"},
			wantMsg: model.TaskDescriptionConstraints,
		},
		{
			name:    "invalid priority",
			req:     primary.AddTaskRequest{Name: "Grade papers", Description: "grading", Priority: "urgent"},
			wantMsg: model.TaskPriorityConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockTaskRepository()
			service := NewTaskService(repo)

			_, err := service.AddTask(context.Background(), tt.req)
			if err == nil {
				t.Fatal("AddTask() expected error")
			}
			var parseErr *parser.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if parseErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", parseErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestAddTaskRejectsDuplicateIdentity(t *testing.T) {
	repo := newMockTaskRepository()
	service := NewTaskService(repo)
	ctx := context.Background()

	first := primary.AddTaskRequest{Name: "Grade papers", Description: "grading", Priority: "low"}
	if _, err := service.AddTask(ctx, first); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	// Same name and description with a different priority is still the
	// same task.
	duplicate := primary.AddTaskRequest{Name: "Grade papers", Description: "grading", Priority: "high"}
	if _, err := service.AddTask(ctx, duplicate); err == nil {
		t.Fatal("AddTask() expected duplicate error")
	}

	// Different description is a different task.
	other := primary.AddTaskRequest{Name: "Grade papers", Description: "week10", Priority: "low"}
	if _, err := service.AddTask(ctx, other); err != nil {
		t.Errorf("AddTask() error = %v, want nil for different identity", err)
	}
}

func TestMarkAndUnmarkTaskDone(t *testing.T) {
	repo := newMockTaskRepository()
	service := NewTaskService(repo)
	ctx := context.Background()

	if _, err := service.AddTask(ctx, primary.AddTaskRequest{Name: "Grade papers", Description: "grading"}); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	done, err := service.MarkTaskDone(ctx, "1")
	if err != nil {
		t.Fatalf("MarkTaskDone() error = %v", err)
	}
	if !done.Done {
		t.Error("MarkTaskDone() should set the done flag")
	}

	undone, err := service.UnmarkTaskDone(ctx, "1")
	if err != nil {
		t.Fatalf("UnmarkTaskDone() error = %v", err)
	}
	if undone.Done {
		t.Error("UnmarkTaskDone() should clear the done flag")
	}
}

func TestTaskIndexErrors(t *testing.T) {
	repo := newMockTaskRepository()
	service := NewTaskService(repo)
	ctx := context.Background()

	_, err := service.MarkTaskDone(ctx, "abc")
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) || parseErr.Kind != parser.InvalidIndex {
		t.Errorf("MarkTaskDone(abc) error = %v, want InvalidIndex", err)
	}

	_, err = service.DeleteTask(ctx, "1")
	if err == nil {
		t.Fatal("DeleteTask() expected out-of-range error")
	}
	if err.Error() != "index 1 is out of range: 0 task(s) listed" {
		t.Errorf("error = %q, want out-of-range message", err.Error())
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newMockTaskRepository()
	service := NewTaskService(repo)
	ctx := context.Background()

	if _, err := service.AddTask(ctx, primary.AddTaskRequest{Name: "Grade papers", Description: "grading"}); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	deleted, err := service.DeleteTask(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if deleted.Name != "Grade papers" {
		t.Errorf("deleted = %+v, want Grade papers", deleted)
	}

	tasks, err := service.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListTasks() = %d tasks, want 0", len(tasks))
	}
}
