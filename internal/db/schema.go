package db

// SchemaSQL is the complete schema for fresh tally installs.
//
// This is the single source of truth for the database schema. All
// repository tests load it via GetSchemaSQL(), so a repository that
// references a column missing here fails immediately with
// "no such column" instead of drifting against production.
//
// Every value-type column stores the canonical string form of its
// value. Loads re-validate through the parsing layer, so a row edited
// out-of-band surfaces an error rather than an invalid value.
const SchemaSQL = `
-- Students (person records)
CREATE TABLE IF NOT EXISTS students (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL,
	email TEXT NOT NULL,
	address TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Tags attached to students
CREATE TABLE IF NOT EXISTS student_tags (
	student_id TEXT NOT NULL,
	tag TEXT NOT NULL,
	FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE,
	UNIQUE(student_id, tag)
);

-- Graded-test results (one row per student, five positional scores)
CREATE TABLE IF NOT EXISTS graded_tests (
	student_id TEXT PRIMARY KEY,
	reading_assessment_1 TEXT NOT NULL,
	reading_assessment_2 TEXT NOT NULL,
	mid_terms TEXT NOT NULL,
	finals TEXT NOT NULL,
	practical_exam TEXT NOT NULL,
	FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
);

-- Tasks
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	priority TEXT NOT NULL CHECK(priority IN ('low', 'medium', 'high')) DEFAULT 'low',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Attendance sessions
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	session_number TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS session_students (
	session_id TEXT NOT NULL,
	student_name TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE,
	UNIQUE(session_id, student_name)
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
