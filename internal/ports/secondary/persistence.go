// Package secondary defines the secondary ports (driven adapters) for
// the application. Record structs carry the canonical string form of
// every validated value; the service layer re-validates them on load.
package secondary

import "context"

// StudentRepository defines the secondary port for student persistence.
type StudentRepository interface {
	// Create persists a new student.
	Create(ctx context.Context, student *StudentRecord) error

	// GetByID retrieves a student by ID.
	GetByID(ctx context.Context, id string) (*StudentRecord, error)

	// GetByName retrieves a student by name. Returns (nil, nil) when no
	// such student exists, so duplicate checks need no error matching.
	GetByName(ctx context.Context, name string) (*StudentRecord, error)

	// List retrieves all students ordered by creation.
	List(ctx context.Context) ([]*StudentRecord, error)

	// Delete removes a student and their dependent rows.
	Delete(ctx context.Context, id string) error

	// ReplaceTags replaces a student's tag set wholesale.
	ReplaceTags(ctx context.Context, id string, tags []string) error

	// UpsertGradedTest stores or replaces a student's graded-test row.
	UpsertGradedTest(ctx context.Context, test *GradedTestRecord) error

	// GetGradedTest retrieves a student's graded-test row, or (nil, nil)
	// when none is recorded.
	GetGradedTest(ctx context.Context, studentID string) (*GradedTestRecord, error)

	// GetNextID returns the next available student ID.
	GetNextID(ctx context.Context) (string, error)
}

// StudentRecord represents a student as stored in persistence.
type StudentRecord struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	Tags      []string
	CreatedAt string
	UpdatedAt string
}

// GradedTestRecord represents a graded-test row as stored in persistence.
type GradedTestRecord struct {
	StudentID          string
	ReadingAssessment1 string
	ReadingAssessment2 string
	MidTerms           string
	Finals             string
	PracticalExam      string
}

// TaskRepository defines the secondary port for task persistence.
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *TaskRecord) error

	// GetByID retrieves a task by ID.
	GetByID(ctx context.Context, id string) (*TaskRecord, error)

	// List retrieves all tasks ordered by creation.
	List(ctx context.Context) ([]*TaskRecord, error)

	// Update replaces a task row wholesale.
	Update(ctx context.Context, task *TaskRecord) error

	// Delete removes a task.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available task ID.
	GetNextID(ctx context.Context) (string, error)
}

// TaskRecord represents a task as stored in persistence.
type TaskRecord struct {
	ID          string
	Name        string
	Description string
	Done        bool
	Priority    string
	CreatedAt   string
	UpdatedAt   string
}

// SessionRepository defines the secondary port for session persistence.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *SessionRecord) error

	// GetByNumber retrieves a session by its session number, or
	// (nil, nil) when no such session exists.
	GetByNumber(ctx context.Context, sessionNumber string) (*SessionRecord, error)

	// List retrieves all sessions ordered by session number.
	List(ctx context.Context) ([]*SessionRecord, error)

	// AddStudent records a student's attendance. Adding a student who
	// is already present is a no-op.
	AddStudent(ctx context.Context, sessionID, studentName string) error

	// GetNextID returns the next available session ID.
	GetNextID(ctx context.Context) (string, error)
}

// SessionRecord represents a session as stored in persistence.
type SessionRecord struct {
	ID            string
	SessionNumber string
	Students      []string
	CreatedAt     string
}
