package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/tally/internal/model"
	"github.com/example/tally/internal/parser"
	"github.com/example/tally/internal/ports/primary"
)

func seedRosterStudent(t *testing.T, repo *mockStudentRepository, name string) {
	t.Helper()
	service := NewStudentService(repo)
	req := validAddStudentRequest()
	req.Name = name
	if _, err := service.AddStudent(context.Background(), req); err != nil {
		t.Fatalf("AddStudent(%q) error = %v", name, err)
	}
}

func TestCreateSession(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	studentRepo := newMockStudentRepository()
	service := NewSessionService(sessionRepo, studentRepo)
	ctx := context.Background()

	session, err := service.CreateSession(ctx, primary.CreateSessionRequest{
		SessionNumber: "3",
		Students:      []string{"Alice Tan", " Alice Tan ", "Bob Lee"},
	})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if session.SessionNumber != "3" {
		t.Errorf("SessionNumber = %q, want 3", session.SessionNumber)
	}
	if len(session.Students) != 2 {
		t.Errorf("Students = %v, want deduplicated pair", session.Students)
	}
}

func TestCreateSessionRejectsInvalidInput(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	studentRepo := newMockStudentRepository()
	service := NewSessionService(sessionRepo, studentRepo)
	ctx := context.Background()

	_, err := service.CreateSession(ctx, primary.CreateSessionRequest{SessionNumber: "0"})
	if err == nil {
		t.Fatal("CreateSession() expected error for invalid number")
	}
	if err.Error() != model.SessionNumberConstraints {
		t.Errorf("error = %q, want %q", err.Error(), model.SessionNumberConstraints)
	}

	_, err = service.CreateSession(ctx, primary.CreateSessionRequest{
		SessionNumber: "1",
		Students:      []string{"Alice Tan", "Bob*"},
	})
	if err == nil {
		t.Fatal("CreateSession() expected batch failure for invalid name")
	}
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) || parseErr.Kind != parser.FormatViolation {
		t.Errorf("error = %v, want FormatViolation", err)
	}
}

func TestCreateSessionRejectsDuplicateNumber(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	studentRepo := newMockStudentRepository()
	service := NewSessionService(sessionRepo, studentRepo)
	ctx := context.Background()

	if _, err := service.CreateSession(ctx, primary.CreateSessionRequest{SessionNumber: "1"}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	_, err := service.CreateSession(ctx, primary.CreateSessionRequest{SessionNumber: "1"})
	if err == nil {
		t.Fatal("CreateSession() expected duplicate error")
	}
	if err.Error() != "session 1 already exists" {
		t.Errorf("error = %q, want duplicate message", err.Error())
	}
}

func TestJoinSession(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	studentRepo := newMockStudentRepository()
	service := NewSessionService(sessionRepo, studentRepo)
	ctx := context.Background()

	seedRosterStudent(t, studentRepo, "Alice Tan")
	if _, err := service.CreateSession(ctx, primary.CreateSessionRequest{SessionNumber: "1"}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	session, err := service.JoinSession(ctx, "1", "Alice Tan")
	if err != nil {
		t.Fatalf("JoinSession() error = %v", err)
	}
	if len(session.Students) != 1 || session.Students[0] != "Alice Tan" {
		t.Errorf("Students = %v, want [Alice Tan]", session.Students)
	}

	// Joining twice is a no-op.
	session, err = service.JoinSession(ctx, "1", "Alice Tan")
	if err != nil {
		t.Fatalf("JoinSession() repeat error = %v", err)
	}
	if len(session.Students) != 1 {
		t.Errorf("Students = %v, want single attendee", session.Students)
	}
}

func TestJoinSessionErrors(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	studentRepo := newMockStudentRepository()
	service := NewSessionService(sessionRepo, studentRepo)
	ctx := context.Background()

	_, err := service.JoinSession(ctx, "9", "Alice Tan")
	if err == nil || err.Error() != "session 9 not found" {
		t.Errorf("JoinSession() error = %v, want session-not-found", err)
	}

	if _, err := service.CreateSession(ctx, primary.CreateSessionRequest{SessionNumber: "9"}); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	_, err = service.JoinSession(ctx, "9", "Alice Tan")
	if err == nil || err.Error() != "student Alice Tan is not on the roster" {
		t.Errorf("JoinSession() error = %v, want not-on-roster", err)
	}
}
