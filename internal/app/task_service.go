package app

import (
	"context"
	"fmt"

	"github.com/example/tally/internal/model"
	"github.com/example/tally/internal/parser"
	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo secondary.TaskRepository
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(taskRepo secondary.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

// AddTask parses the raw fields and creates a task. Duplicates are
// detected with IsSameTask: same name and description, regardless of
// done flag or priority.
func (s *TaskServiceImpl) AddTask(ctx context.Context, req primary.AddTaskRequest) (*primary.Task, error) {
	name, err := parser.ParseTaskName(req.Name)
	if err != nil {
		return nil, err
	}
	description, err := parser.ParseTaskDescription(req.Description)
	if err != nil {
		return nil, err
	}
	rawPriority := req.Priority
	if rawPriority == "" {
		rawPriority = model.PriorityLow
	}
	priority, err := parser.ParseTaskPriority(rawPriority)
	if err != nil {
		return nil, err
	}

	task := model.NewTask(name, description, priority)

	records, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	for _, record := range records {
		existing, err := taskFromRecord(record)
		if err != nil {
			return nil, err
		}
		if task.IsSameTask(existing) {
			return nil, fmt.Errorf("task %s already exists in the task list", task.Name())
		}
	}

	nextID, err := s.taskRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}

	record := &secondary.TaskRecord{
		ID:          nextID,
		Name:        task.Name().String(),
		Description: task.Description().String(),
		Done:        task.Done(),
		Priority:    task.Priority().String(),
	}
	if err := s.taskRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return recordToTask(record), nil
}

// ListTasks retrieves all tasks, re-validating each stored row.
func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*primary.Task, error) {
	records, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*primary.Task, len(records))
	for i, record := range records {
		if _, err := taskFromRecord(record); err != nil {
			return nil, err
		}
		tasks[i] = recordToTask(record)
	}
	return tasks, nil
}

// MarkTaskDone marks the task at the given index done, replacing the
// stored row wholesale.
func (s *TaskServiceImpl) MarkTaskDone(ctx context.Context, oneBasedIndex string) (*primary.Task, error) {
	return s.setDone(ctx, oneBasedIndex, true)
}

// UnmarkTaskDone clears the done flag of the task at the given index.
func (s *TaskServiceImpl) UnmarkTaskDone(ctx context.Context, oneBasedIndex string) (*primary.Task, error) {
	return s.setDone(ctx, oneBasedIndex, false)
}

// DeleteTask removes the task at the given index.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, oneBasedIndex string) (*primary.Task, error) {
	record, err := s.recordAtIndex(ctx, oneBasedIndex)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	return recordToTask(record), nil
}

func (s *TaskServiceImpl) setDone(ctx context.Context, oneBasedIndex string, done bool) (*primary.Task, error) {
	record, err := s.recordAtIndex(ctx, oneBasedIndex)
	if err != nil {
		return nil, err
	}

	task, err := taskFromRecord(record)
	if err != nil {
		return nil, err
	}
	if done {
		task = task.MarkDone()
	} else {
		task = task.MarkNotDone()
	}

	// The record is replaced wholesale from the new task value.
	replacement := &secondary.TaskRecord{
		ID:          record.ID,
		Name:        task.Name().String(),
		Description: task.Description().String(),
		Done:        task.Done(),
		Priority:    task.Priority().String(),
	}
	if err := s.taskRepo.Update(ctx, replacement); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return recordToTask(replacement), nil
}

func (s *TaskServiceImpl) recordAtIndex(ctx context.Context, oneBasedIndex string) (*secondary.TaskRecord, error) {
	idx, err := parser.ParseIndex(oneBasedIndex)
	if err != nil {
		return nil, err
	}

	records, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if idx.ZeroBased() >= len(records) {
		return nil, fmt.Errorf("index %d is out of range: %d task(s) listed", idx.OneBased(), len(records))
	}
	return records[idx.ZeroBased()], nil
}

// taskFromRecord rebuilds a Task from stored canonical strings.
func taskFromRecord(record *secondary.TaskRecord) (model.Task, error) {
	name, err := parser.ParseTaskName(record.Name)
	if err != nil {
		return model.Task{}, fmt.Errorf("stored task %s is corrupt: %w", record.ID, err)
	}
	description, err := parser.ParseTaskDescription(record.Description)
	if err != nil {
		return model.Task{}, fmt.Errorf("stored task %s is corrupt: %w", record.ID, err)
	}
	priority, err := parser.ParseTaskPriority(record.Priority)
	if err != nil {
		return model.Task{}, fmt.Errorf("stored task %s is corrupt: %w", record.ID, err)
	}

	task := model.NewTask(name, description, priority)
	if record.Done {
		task = task.MarkDone()
	}
	return task, nil
}

func recordToTask(record *secondary.TaskRecord) *primary.Task {
	return &primary.Task{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Done:        record.Done,
		Priority:    record.Priority,
	}
}
