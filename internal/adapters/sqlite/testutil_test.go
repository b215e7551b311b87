// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through db.GetSchemaSQL() so tests run against
// the authoritative schema. Do not hardcode CREATE TABLE statements in
// test files; use setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tally/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedStudent inserts a test student and returns its ID.
func seedStudent(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "STU-001"
	}
	if name == "" {
		name = "Alice Tan"
	}
	_, err := db.Exec(
		"INSERT INTO students (id, name, phone, email, address) VALUES (?, ?, '93121534', 'alice@example.com', 'Blk 456')",
		id, name,
	)
	if err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return id
}

// seedTask inserts a test task and returns its ID.
func seedTask(t *testing.T, db *sql.DB, id, name, description string) string {
	t.Helper()
	if id == "" {
		id = "TASK-001"
	}
	if name == "" {
		name = "Grade papers"
	}
	if description == "" {
		description = "grading"
	}
	_, err := db.Exec(
		"INSERT INTO tasks (id, name, description, done, priority) VALUES (?, ?, ?, 0, 'low')",
		id, name, description,
	)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return id
}

// seedSession inserts a test session and returns its ID.
func seedSession(t *testing.T, db *sql.DB, id, sessionNumber string) string {
	t.Helper()
	if id == "" {
		id = "SES-001"
	}
	if sessionNumber == "" {
		sessionNumber = "1"
	}
	_, err := db.Exec(
		"INSERT INTO sessions (id, session_number) VALUES (?, ?)",
		id, sessionNumber,
	)
	if err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return id
}
