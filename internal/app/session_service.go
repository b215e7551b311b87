package app

import (
	"context"
	"fmt"

	"github.com/example/tally/internal/model"
	"github.com/example/tally/internal/parser"
	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// SessionServiceImpl implements the SessionService interface.
type SessionServiceImpl struct {
	sessionRepo secondary.SessionRepository
	studentRepo secondary.StudentRepository
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(sessionRepo secondary.SessionRepository, studentRepo secondary.StudentRepository) *SessionServiceImpl {
	return &SessionServiceImpl{sessionRepo: sessionRepo, studentRepo: studentRepo}
}

// CreateSession parses the session number and attendee names and
// creates a session. Session numbers are unique.
func (s *SessionServiceImpl) CreateSession(ctx context.Context, req primary.CreateSessionRequest) (*primary.Session, error) {
	number, err := parser.ParseSessionNumber(req.SessionNumber)
	if err != nil {
		return nil, err
	}
	students := make(map[model.Name]struct{})
	if req.Students != nil {
		students, err = parser.ParseNames(req.Students)
		if err != nil {
			return nil, err
		}
	}

	session := model.NewSession(number, students)

	existing, err := s.sessionRepo.GetByNumber(ctx, session.Number().String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("session %s already exists", session.Number())
	}

	nextID, err := s.sessionRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	record := &secondary.SessionRecord{
		ID:            nextID,
		SessionNumber: session.Number().String(),
	}
	for _, name := range session.Students() {
		record.Students = append(record.Students, name.String())
	}

	if err := s.sessionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	created, err := s.sessionRepo.GetByNumber(ctx, record.SessionNumber)
	if err != nil {
		return nil, err
	}
	return recordToSession(created), nil
}

// JoinSession records a student's attendance in an existing session.
// The student must already be on the roster.
func (s *SessionServiceImpl) JoinSession(ctx context.Context, sessionNumber, studentName string) (*primary.Session, error) {
	number, err := parser.ParseSessionNumber(sessionNumber)
	if err != nil {
		return nil, err
	}
	name, err := parser.ParseName(studentName)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByNumber(ctx, number.String())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session %s not found", number)
	}

	student, err := s.studentRepo.GetByName(ctx, name.String())
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("student %s is not on the roster", name)
	}

	if err := s.sessionRepo.AddStudent(ctx, session.ID, name.String()); err != nil {
		return nil, err
	}

	updated, err := s.sessionRepo.GetByNumber(ctx, number.String())
	if err != nil {
		return nil, err
	}
	return recordToSession(updated), nil
}

// ListSessions retrieves all sessions, re-validating each stored row.
func (s *SessionServiceImpl) ListSessions(ctx context.Context) ([]*primary.Session, error) {
	records, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*primary.Session, len(records))
	for i, record := range records {
		if _, err := sessionFromRecord(record); err != nil {
			return nil, err
		}
		sessions[i] = recordToSession(record)
	}
	return sessions, nil
}

// sessionFromRecord rebuilds a Session from stored canonical strings.
func sessionFromRecord(record *secondary.SessionRecord) (model.Session, error) {
	number, err := parser.ParseSessionNumber(record.SessionNumber)
	if err != nil {
		return model.Session{}, fmt.Errorf("stored session %s is corrupt: %w", record.ID, err)
	}
	students := make(map[model.Name]struct{})
	if record.Students != nil {
		students, err = parser.ParseNames(record.Students)
		if err != nil {
			return model.Session{}, fmt.Errorf("stored session %s is corrupt: %w", record.ID, err)
		}
	}
	return model.NewSession(number, students), nil
}

func recordToSession(record *secondary.SessionRecord) *primary.Session {
	return &primary.Session{
		ID:            record.ID,
		SessionNumber: record.SessionNumber,
		Students:      record.Students,
	}
}
