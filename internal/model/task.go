package model

import (
	"errors"
	"regexp"
)

const (
	TaskNameConstraints = "Task names should only contain alphanumeric characters and spaces, and should not be blank"

	TaskDescriptionConstraints = "Task descriptions should be alphanumeric"

	TaskPriorityConstraints = "Task priority should be one of: low, medium, high"
)

// Task priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var (
	taskNameRegexp        = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)
	taskDescriptionRegexp = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	taskPriorityRegexp    = regexp.MustCompile(`^(low|medium|high)$`)
)

// TaskName is a task's display name.
type TaskName struct {
	value string
}

// IsValidTaskName reports whether s satisfies the task name format.
func IsValidTaskName(s string) bool {
	return taskNameRegexp.MatchString(s)
}

// NewTaskName constructs a TaskName, or fails with TaskNameConstraints.
func NewTaskName(s string) (TaskName, error) {
	if !IsValidTaskName(s) {
		return TaskName{}, errors.New(TaskNameConstraints)
	}
	return TaskName{value: s}, nil
}

func (n TaskName) String() string {
	return n.value
}

// TaskDescription is a task's one-word description.
type TaskDescription struct {
	value string
}

// IsValidTaskDescription reports whether s satisfies the description format.
func IsValidTaskDescription(s string) bool {
	return taskDescriptionRegexp.MatchString(s)
}

// NewTaskDescription constructs a TaskDescription, or fails with
// TaskDescriptionConstraints.
func NewTaskDescription(s string) (TaskDescription, error) {
	if !IsValidTaskDescription(s) {
		return TaskDescription{}, errors.New(TaskDescriptionConstraints)
	}
	return TaskDescription{value: s}, nil
}

func (d TaskDescription) String() string {
	return d.value
}

// TaskPriority is one of the closed set low, medium, high.
type TaskPriority struct {
	value string
}

// IsValidTaskPriority reports whether s is a recognised priority level.
func IsValidTaskPriority(s string) bool {
	return taskPriorityRegexp.MatchString(s)
}

// NewTaskPriority constructs a TaskPriority, or fails with
// TaskPriorityConstraints.
func NewTaskPriority(s string) (TaskPriority, error) {
	if !IsValidTaskPriority(s) {
		return TaskPriority{}, errors.New(TaskPriorityConstraints)
	}
	return TaskPriority{value: s}, nil
}

func (p TaskPriority) String() string {
	return p.value
}

// Task is a tracked to-do item.
//
// Identity fields are name and description: IsSameTask compares only
// those, and the owning list uses it for duplicate detection. Full
// equality is ==, which compares all four fields — done flag and
// priority included — so map-key hashing and equality agree.
type Task struct {
	name        TaskName
	description TaskDescription
	done        bool
	priority    TaskPriority
}

// NewTask builds a Task. The done flag defaults to false.
func NewTask(name TaskName, description TaskDescription, priority TaskPriority) Task {
	return Task{name: name, description: description, done: false, priority: priority}
}

func (t Task) Name() TaskName               { return t.name }
func (t Task) Description() TaskDescription { return t.description }
func (t Task) Done() bool                   { return t.done }
func (t Task) Priority() TaskPriority       { return t.priority }

// IsSameTask reports whether both tasks are logically the same record:
// name and description match by value, regardless of done flag or
// priority.
func (t Task) IsSameTask(other Task) bool {
	return t.name == other.name && t.description == other.description
}

// MarkDone returns a copy of the task with the done flag set. Tasks are
// never mutated in place; the owning list substitutes the replacement.
func (t Task) MarkDone() Task {
	t.done = true
	return t
}

// MarkNotDone returns a copy of the task with the done flag cleared.
func (t Task) MarkNotDone() Task {
	t.done = false
	return t
}
