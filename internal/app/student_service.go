// Package app implements the primary ports. Services own the
// parse-and-validate step: raw request strings go through the parser,
// canonical forms go to the repositories, and loads re-validate so a
// row edited out-of-band never becomes an invalid value.
package app

import (
	"context"
	"fmt"

	"github.com/example/tally/internal/model"
	"github.com/example/tally/internal/parser"
	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// StudentServiceImpl implements the StudentService interface.
type StudentServiceImpl struct {
	studentRepo secondary.StudentRepository
}

// NewStudentService creates a new StudentService with injected dependencies.
func NewStudentService(studentRepo secondary.StudentRepository) *StudentServiceImpl {
	return &StudentServiceImpl{studentRepo: studentRepo}
}

// AddStudent parses the raw fields, rejects duplicates by name, and
// persists the canonical forms.
func (s *StudentServiceImpl) AddStudent(ctx context.Context, req primary.AddStudentRequest) (*primary.Student, error) {
	name, err := parser.ParseName(req.Name)
	if err != nil {
		return nil, err
	}
	phone, err := parser.ParsePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	email, err := parser.ParseEmail(req.Email)
	if err != nil {
		return nil, err
	}
	address, err := parser.ParseAddress(req.Address)
	if err != nil {
		return nil, err
	}
	tags := make(map[model.Tag]struct{})
	if req.Tags != nil {
		tags, err = parser.ParseTags(req.Tags)
		if err != nil {
			return nil, err
		}
	}

	person := model.NewPerson(name, phone, email, address, tags)

	existing, err := s.studentRepo.GetByName(ctx, person.Name().String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("student %s already exists in the roster", person.Name())
	}

	nextID, err := s.studentRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate student ID: %w", err)
	}

	record := &secondary.StudentRecord{
		ID:      nextID,
		Name:    person.Name().String(),
		Phone:   person.Phone().String(),
		Email:   person.Email().String(),
		Address: person.Address().String(),
	}
	for _, tag := range person.Tags() {
		record.Tags = append(record.Tags, tag.String())
	}

	if err := s.studentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return s.recordToStudent(ctx, record)
}

// ListStudents retrieves all students, re-validating each stored row.
func (s *StudentServiceImpl) ListStudents(ctx context.Context) ([]*primary.Student, error) {
	records, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]*primary.Student, len(records))
	for i, record := range records {
		student, err := s.recordToStudent(ctx, record)
		if err != nil {
			return nil, err
		}
		students[i] = student
	}
	return students, nil
}

// DeleteStudent removes the student at the given one-based index.
func (s *StudentServiceImpl) DeleteStudent(ctx context.Context, oneBasedIndex string) (*primary.Student, error) {
	record, err := s.recordAtIndex(ctx, oneBasedIndex)
	if err != nil {
		return nil, err
	}

	student, err := s.recordToStudent(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to delete student: %w", err)
	}
	return student, nil
}

// TagStudent replaces the tags of the student at the given index.
func (s *StudentServiceImpl) TagStudent(ctx context.Context, oneBasedIndex string, tags []string) (*primary.Student, error) {
	record, err := s.recordAtIndex(ctx, oneBasedIndex)
	if err != nil {
		return nil, err
	}

	tagSet, err := parser.ParseTags(tags)
	if err != nil {
		return nil, err
	}

	canonical := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		canonical = append(canonical, tag.String())
	}

	if err := s.studentRepo.ReplaceTags(ctx, record.ID, canonical); err != nil {
		return nil, fmt.Errorf("failed to replace tags: %w", err)
	}

	updated, err := s.studentRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return s.recordToStudent(ctx, updated)
}

// SetGrades parses a five-component graded-test string and records it
// for the student at the given index.
func (s *StudentServiceImpl) SetGrades(ctx context.Context, oneBasedIndex string, gradedTest string) (*primary.Student, error) {
	record, err := s.recordAtIndex(ctx, oneBasedIndex)
	if err != nil {
		return nil, err
	}

	test, err := parser.ParseGradedTest(gradedTest)
	if err != nil {
		return nil, err
	}

	testRecord := &secondary.GradedTestRecord{
		StudentID:          record.ID,
		ReadingAssessment1: test.ReadingAssessment1.String(),
		ReadingAssessment2: test.ReadingAssessment2.String(),
		MidTerms:           test.MidTerms.String(),
		Finals:             test.Finals.String(),
		PracticalExam:      test.PracticalExam.String(),
	}
	if err := s.studentRepo.UpsertGradedTest(ctx, testRecord); err != nil {
		return nil, fmt.Errorf("failed to record graded test: %w", err)
	}

	return s.recordToStudent(ctx, record)
}

// GetGrades retrieves the graded test recorded for the student at the
// given index, or nil when none is recorded.
func (s *StudentServiceImpl) GetGrades(ctx context.Context, oneBasedIndex string) (*primary.GradedTest, error) {
	record, err := s.recordAtIndex(ctx, oneBasedIndex)
	if err != nil {
		return nil, err
	}

	testRecord, err := s.studentRepo.GetGradedTest(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	if testRecord == nil {
		return nil, nil
	}

	test, err := gradedTestFromRecord(testRecord)
	if err != nil {
		return nil, err
	}
	return &primary.GradedTest{
		ReadingAssessment1: test.ReadingAssessment1.String(),
		ReadingAssessment2: test.ReadingAssessment2.String(),
		MidTerms:           test.MidTerms.String(),
		Finals:             test.Finals.String(),
		PracticalExam:      test.PracticalExam.String(),
	}, nil
}

// recordAtIndex resolves a one-based index string against the student list.
func (s *StudentServiceImpl) recordAtIndex(ctx context.Context, oneBasedIndex string) (*secondary.StudentRecord, error) {
	idx, err := parser.ParseIndex(oneBasedIndex)
	if err != nil {
		return nil, err
	}

	records, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if idx.ZeroBased() >= len(records) {
		return nil, fmt.Errorf("index %d is out of range: %d student(s) listed", idx.OneBased(), len(records))
	}
	return records[idx.ZeroBased()], nil
}

// recordToStudent re-validates a stored row through the parsing layer
// and attaches the student's graded test, if any.
func (s *StudentServiceImpl) recordToStudent(ctx context.Context, record *secondary.StudentRecord) (*primary.Student, error) {
	person, err := personFromRecord(record)
	if err != nil {
		return nil, err
	}

	student := &primary.Student{
		ID:      record.ID,
		Name:    person.Name().String(),
		Phone:   person.Phone().String(),
		Email:   person.Email().String(),
		Address: person.Address().String(),
	}
	for _, tag := range person.Tags() {
		student.Tags = append(student.Tags, tag.String())
	}

	testRecord, err := s.studentRepo.GetGradedTest(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	if testRecord != nil {
		test, err := gradedTestFromRecord(testRecord)
		if err != nil {
			return nil, err
		}
		student.Grades = &primary.GradedTest{
			ReadingAssessment1: test.ReadingAssessment1.String(),
			ReadingAssessment2: test.ReadingAssessment2.String(),
			MidTerms:           test.MidTerms.String(),
			Finals:             test.Finals.String(),
			PracticalExam:      test.PracticalExam.String(),
		}
	}

	return student, nil
}

// personFromRecord rebuilds a Person from stored canonical strings.
// A row that no longer parses surfaces as an error, never as a value.
func personFromRecord(record *secondary.StudentRecord) (model.Person, error) {
	name, err := parser.ParseName(record.Name)
	if err != nil {
		return model.Person{}, fmt.Errorf("stored student %s is corrupt: %w", record.ID, err)
	}
	phone, err := parser.ParsePhone(record.Phone)
	if err != nil {
		return model.Person{}, fmt.Errorf("stored student %s is corrupt: %w", record.ID, err)
	}
	email, err := parser.ParseEmail(record.Email)
	if err != nil {
		return model.Person{}, fmt.Errorf("stored student %s is corrupt: %w", record.ID, err)
	}
	address, err := parser.ParseAddress(record.Address)
	if err != nil {
		return model.Person{}, fmt.Errorf("stored student %s is corrupt: %w", record.ID, err)
	}
	tags := make(map[model.Tag]struct{})
	if record.Tags != nil {
		tags, err = parser.ParseTags(record.Tags)
		if err != nil {
			return model.Person{}, fmt.Errorf("stored student %s is corrupt: %w", record.ID, err)
		}
	}
	return model.NewPerson(name, phone, email, address, tags), nil
}

// gradedTestFromRecord rebuilds a GradedTest from stored canonical strings.
func gradedTestFromRecord(record *secondary.GradedTestRecord) (model.GradedTest, error) {
	ra1, err := parser.ParseReadingAssessment(record.ReadingAssessment1)
	if err != nil {
		return model.GradedTest{}, fmt.Errorf("stored graded test for %s is corrupt: %w", record.StudentID, err)
	}
	ra2, err := parser.ParseReadingAssessment(record.ReadingAssessment2)
	if err != nil {
		return model.GradedTest{}, fmt.Errorf("stored graded test for %s is corrupt: %w", record.StudentID, err)
	}
	midTerms, err := parser.ParseMidTerms(record.MidTerms)
	if err != nil {
		return model.GradedTest{}, fmt.Errorf("stored graded test for %s is corrupt: %w", record.StudentID, err)
	}
	finals, err := parser.ParseFinals(record.Finals)
	if err != nil {
		return model.GradedTest{}, fmt.Errorf("stored graded test for %s is corrupt: %w", record.StudentID, err)
	}
	practicalExam, err := parser.ParsePracticalExam(record.PracticalExam)
	if err != nil {
		return model.GradedTest{}, fmt.Errorf("stored graded test for %s is corrupt: %w", record.StudentID, err)
	}
	return model.GradedTest{
		ReadingAssessment1: ra1,
		ReadingAssessment2: ra2,
		MidTerms:           midTerms,
		Finals:             finals,
		PracticalExam:      practicalExam,
	}, nil
}
