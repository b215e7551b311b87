package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/tally/internal/ports/secondary"
)

// Ensure the mocks implement the interfaces
var (
	_ secondary.StudentRepository = (*mockStudentRepository)(nil)
	_ secondary.TaskRepository    = (*mockTaskRepository)(nil)
	_ secondary.SessionRepository = (*mockSessionRepository)(nil)
)

// mockStudentRepository implements secondary.StudentRepository for testing.
type mockStudentRepository struct {
	students  map[string]*secondary.StudentRecord
	grades    map[string]*secondary.GradedTestRecord
	createErr error
	listErr   error
}

func newMockStudentRepository() *mockStudentRepository {
	return &mockStudentRepository{
		students: make(map[string]*secondary.StudentRecord),
		grades:   make(map[string]*secondary.GradedTestRecord),
	}
}

func (m *mockStudentRepository) Create(ctx context.Context, student *secondary.StudentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id string) (*secondary.StudentRecord, error) {
	if student, ok := m.students[id]; ok {
		return student, nil
	}
	return nil, fmt.Errorf("student %s not found", id)
}

func (m *mockStudentRepository) GetByName(ctx context.Context, name string) (*secondary.StudentRecord, error) {
	for _, student := range m.students {
		if student.Name == name {
			return student, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepository) List(ctx context.Context) ([]*secondary.StudentRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var records []*secondary.StudentRecord
	for _, student := range m.students {
		records = append(records, student)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *mockStudentRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.students[id]; !ok {
		return fmt.Errorf("student %s not found", id)
	}
	delete(m.students, id)
	delete(m.grades, id)
	return nil
}

func (m *mockStudentRepository) ReplaceTags(ctx context.Context, id string, tags []string) error {
	student, ok := m.students[id]
	if !ok {
		return fmt.Errorf("student %s not found", id)
	}
	student.Tags = append([]string(nil), tags...)
	sort.Strings(student.Tags)
	return nil
}

func (m *mockStudentRepository) UpsertGradedTest(ctx context.Context, test *secondary.GradedTestRecord) error {
	m.grades[test.StudentID] = test
	return nil
}

func (m *mockStudentRepository) GetGradedTest(ctx context.Context, studentID string) (*secondary.GradedTestRecord, error) {
	return m.grades[studentID], nil
}

func (m *mockStudentRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("STU-%03d", len(m.students)+1), nil
}

// mockTaskRepository implements secondary.TaskRepository for testing.
type mockTaskRepository struct {
	tasks     map[string]*secondary.TaskRecord
	createErr error
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[string]*secondary.TaskRecord)}
}

func (m *mockTaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	if task, ok := m.tasks[id]; ok {
		return task, nil
	}
	return nil, fmt.Errorf("task %s not found", id)
}

func (m *mockTaskRepository) List(ctx context.Context) ([]*secondary.TaskRecord, error) {
	var records []*secondary.TaskRecord
	for _, task := range m.tasks {
		records = append(records, task)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *secondary.TaskRecord) error {
	if _, ok := m.tasks[task.ID]; !ok {
		return fmt.Errorf("task %s not found", task.ID)
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return fmt.Errorf("task %s not found", id)
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("TASK-%03d", len(m.tasks)+1), nil
}

// mockSessionRepository implements secondary.SessionRepository for testing.
type mockSessionRepository struct {
	sessions map[string]*secondary.SessionRecord
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]*secondary.SessionRecord)}
}

func (m *mockSessionRepository) Create(ctx context.Context, session *secondary.SessionRecord) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepository) GetByNumber(ctx context.Context, sessionNumber string) (*secondary.SessionRecord, error) {
	for _, session := range m.sessions {
		if session.SessionNumber == sessionNumber {
			return session, nil
		}
	}
	return nil, nil
}

func (m *mockSessionRepository) List(ctx context.Context) ([]*secondary.SessionRecord, error) {
	var records []*secondary.SessionRecord
	for _, session := range m.sessions {
		records = append(records, session)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *mockSessionRepository) AddStudent(ctx context.Context, sessionID, studentName string) error {
	session, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s not found", sessionID)
	}
	for _, existing := range session.Students {
		if existing == studentName {
			return nil
		}
	}
	session.Students = append(session.Students, studentName)
	sort.Strings(session.Students)
	return nil
}

func (m *mockSessionRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("SES-%03d", len(m.sessions)+1), nil
}
