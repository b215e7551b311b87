// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tally/internal/ports/secondary"
)

// StudentRepository implements secondary.StudentRepository with SQLite.
type StudentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new SQLite student repository.
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create persists a new student and their tags.
func (r *StudentRepository) Create(ctx context.Context, student *secondary.StudentRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO students (id, name, phone, email, address) VALUES (?, ?, ?, ?, ?)",
		student.ID, student.Name, student.Phone, student.Email, student.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	for _, tag := range student.Tags {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO student_tags (student_id, tag) VALUES (?, ?)",
			student.ID, tag,
		)
		if err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*secondary.StudentRecord, error) {
	record, err := r.scanStudent(r.db.QueryRowContext(ctx,
		"SELECT id, name, phone, email, address, created_at, updated_at FROM students WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if err := r.loadTags(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByName retrieves a student by name, or (nil, nil) when absent.
func (r *StudentRepository) GetByName(ctx context.Context, name string) (*secondary.StudentRecord, error) {
	record, err := r.scanStudent(r.db.QueryRowContext(ctx,
		"SELECT id, name, phone, email, address, created_at, updated_at FROM students WHERE name = ?",
		name,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student by name: %w", err)
	}

	if err := r.loadTags(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves all students ordered by creation.
func (r *StudentRepository) List(ctx context.Context) ([]*secondary.StudentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, phone, email, address, created_at, updated_at FROM students ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []*secondary.StudentRecord
	for rows.Next() {
		record, err := r.scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}

	for _, record := range students {
		if err := r.loadTags(ctx, record); err != nil {
			return nil, err
		}
	}
	return students, nil
}

// Delete removes a student; tags and graded tests cascade.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("student %s not found", id)
	}
	return nil
}

// ReplaceTags replaces a student's tag set wholesale.
func (r *StudentRepository) ReplaceTags(ctx context.Context, id string, tags []string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM student_tags WHERE student_id = ?", id); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	for _, tag := range tags {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO student_tags (student_id, tag) VALUES (?, ?)",
			id, tag,
		)
		if err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}
	return nil
}

// UpsertGradedTest stores or replaces a student's graded-test row.
func (r *StudentRepository) UpsertGradedTest(ctx context.Context, test *secondary.GradedTestRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO graded_tests (student_id, reading_assessment_1, reading_assessment_2, mid_terms, finals, practical_exam)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(student_id) DO UPDATE SET
			reading_assessment_1 = excluded.reading_assessment_1,
			reading_assessment_2 = excluded.reading_assessment_2,
			mid_terms = excluded.mid_terms,
			finals = excluded.finals,
			practical_exam = excluded.practical_exam`,
		test.StudentID, test.ReadingAssessment1, test.ReadingAssessment2,
		test.MidTerms, test.Finals, test.PracticalExam,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert graded test: %w", err)
	}
	return nil
}

// GetGradedTest retrieves a student's graded-test row, or (nil, nil).
func (r *StudentRepository) GetGradedTest(ctx context.Context, studentID string) (*secondary.GradedTestRecord, error) {
	record := &secondary.GradedTestRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT student_id, reading_assessment_1, reading_assessment_2, mid_terms, finals, practical_exam
		 FROM graded_tests WHERE student_id = ?`,
		studentID,
	).Scan(&record.StudentID, &record.ReadingAssessment1, &record.ReadingAssessment2,
		&record.MidTerms, &record.Finals, &record.PracticalExam)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get graded test: %w", err)
	}
	return record, nil
}

// GetNextID returns the next available student ID.
func (r *StudentRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM students",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next student ID: %w", err)
	}

	return fmt.Sprintf("STU-%03d", maxID+1), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *StudentRepository) scanStudent(row rowScanner) (*secondary.StudentRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.StudentRecord{}
	err := row.Scan(&record.ID, &record.Name, &record.Phone, &record.Email,
		&record.Address, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

func (r *StudentRepository) loadTags(ctx context.Context, record *secondary.StudentRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT tag FROM student_tags WHERE student_id = ? ORDER BY tag ASC",
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		record.Tags = append(record.Tags, tag)
	}
	return rows.Err()
}
