package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tally/internal/ports/secondary"
)

// SessionRepository implements secondary.SessionRepository with SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite session repository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session and its initial attendees.
func (r *SessionRepository) Create(ctx context.Context, session *secondary.SessionRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (id, session_number) VALUES (?, ?)",
		session.ID, session.SessionNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	for _, name := range session.Students {
		if err := r.AddStudent(ctx, session.ID, name); err != nil {
			return err
		}
	}
	return nil
}

// GetByNumber retrieves a session by its session number, or (nil, nil).
func (r *SessionRepository) GetByNumber(ctx context.Context, sessionNumber string) (*secondary.SessionRecord, error) {
	var createdAt time.Time

	record := &secondary.SessionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, session_number, created_at FROM sessions WHERE session_number = ?",
		sessionNumber,
	).Scan(&record.ID, &record.SessionNumber, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	if err := r.loadStudents(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves all sessions ordered by session number.
func (r *SessionRepository) List(ctx context.Context) ([]*secondary.SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, session_number, created_at FROM sessions ORDER BY CAST(session_number AS INTEGER) ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*secondary.SessionRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.SessionRecord{}
		if err := rows.Scan(&record.ID, &record.SessionNumber, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		sessions = append(sessions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	for _, record := range sessions {
		if err := r.loadStudents(ctx, record); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// AddStudent records a student's attendance. Repeats are no-ops.
func (r *SessionRepository) AddStudent(ctx context.Context, sessionID, studentName string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO session_students (session_id, student_name) VALUES (?, ?)",
		sessionID, studentName,
	)
	if err != nil {
		return fmt.Errorf("failed to add student to session: %w", err)
	}
	return nil
}

// GetNextID returns the next available session ID.
func (r *SessionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM sessions",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next session ID: %w", err)
	}

	return fmt.Sprintf("SES-%03d", maxID+1), nil
}

func (r *SessionRepository) loadStudents(ctx context.Context, record *secondary.SessionRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT student_name FROM session_students WHERE session_id = ? ORDER BY student_name ASC",
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load attendees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan attendee: %w", err)
		}
		record.Students = append(record.Students, name)
	}
	return rows.Err()
}
