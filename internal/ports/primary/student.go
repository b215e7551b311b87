// Package primary defines the primary ports (driving interfaces) for
// the application. Requests carry raw user strings; services own the
// parse-and-validate step and return typed parse failures.
package primary

import "context"

// StudentService defines the primary port for student operations.
type StudentService interface {
	// AddStudent parses the raw fields and creates a student.
	// Fails on the first invalid field or when a student with the same
	// name already exists.
	AddStudent(ctx context.Context, req AddStudentRequest) (*Student, error)

	// ListStudents retrieves all students.
	ListStudents(ctx context.Context) ([]*Student, error)

	// DeleteStudent removes the student at the given one-based index.
	DeleteStudent(ctx context.Context, oneBasedIndex string) (*Student, error)

	// TagStudent replaces the tags of the student at the given
	// one-based index.
	TagStudent(ctx context.Context, oneBasedIndex string, tags []string) (*Student, error)

	// SetGrades parses a five-component graded-test string and records
	// it for the student at the given one-based index.
	SetGrades(ctx context.Context, oneBasedIndex string, gradedTest string) (*Student, error)

	// GetGrades retrieves the graded test recorded for the student at
	// the given one-based index. Returns nil when none is recorded.
	GetGrades(ctx context.Context, oneBasedIndex string) (*GradedTest, error)
}

// AddStudentRequest contains the raw fields for creating a student.
type AddStudentRequest struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Tags    []string
}

// Student represents a student at the port boundary. All fields are
// canonical string forms.
type Student struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
	Tags    []string
	Grades  *GradedTest // nil when no graded test is recorded
}

// GradedTest represents a graded-test result at the port boundary.
type GradedTest struct {
	ReadingAssessment1 string
	ReadingAssessment2 string
	MidTerms           string
	Finals             string
	PracticalExam      string
}
