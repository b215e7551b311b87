package primary

import "context"

// SessionService defines the primary port for attendance sessions.
type SessionService interface {
	// CreateSession parses the session number and initial attendee
	// names and creates a session. Fails when the session number is
	// already taken.
	CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error)

	// JoinSession records a student's attendance in an existing
	// session. The student must already be on the roster.
	JoinSession(ctx context.Context, sessionNumber, studentName string) (*Session, error)

	// ListSessions retrieves all sessions.
	ListSessions(ctx context.Context) ([]*Session, error)
}

// CreateSessionRequest contains the raw fields for creating a session.
type CreateSessionRequest struct {
	SessionNumber string
	Students      []string
}

// Session represents a session at the port boundary.
type Session struct {
	ID            string
	SessionNumber string
	Students      []string
}
