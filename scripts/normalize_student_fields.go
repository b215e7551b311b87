// +build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Student represents a student row from the database
type Student struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
}

// Field patterns matching the current validation rules. Rows imported
// before trimming was enforced may carry surrounding whitespace.
var fieldPatterns = map[string]*regexp.Regexp{
	"name":    regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`),
	"phone":   regexp.MustCompile(`^[0-9]{3,}$`),
	"email":   regexp.MustCompile(`^[a-zA-Z0-9]+([+_.-][a-zA-Z0-9]+)*@[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`),
	"address": regexp.MustCompile(`^[^\s]`),
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview normalization without executing")
	flag.Parse()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	dbPath := filepath.Join(homeDir, ".tally", "tally.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	students, err := findStudentsToNormalize(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding students: %v\n", err)
		os.Exit(1)
	}

	if len(students) == 0 {
		fmt.Println("No students need normalization")
		return
	}

	fmt.Printf("Found %d student(s) to normalize:\n\n", len(students))

	for _, student := range students {
		trimmed := trimFields(student)
		fmt.Printf("  %s: %q\n", student.ID, student.Name)
		fmt.Printf("    -> %q / %q / %q / %q\n", trimmed.Name, trimmed.Phone, trimmed.Email, trimmed.Address)
		for _, field := range invalidFields(trimmed) {
			fmt.Printf("    !! %s still fails validation after trimming\n", field)
		}
		fmt.Println()
	}

	if *dryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		return
	}

	fmt.Println("=== Executing normalization ===")
	fmt.Println()

	normalized := 0
	for _, student := range students {
		trimmed := trimFields(student)
		if err := updateStudent(db, trimmed); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating %s: %v\n", student.ID, err)
			continue
		}
		fmt.Printf("✓ Normalized %s\n", student.ID)
		normalized++
	}

	fmt.Printf("\n=== Normalization complete: %d/%d students updated ===\n", normalized, len(students))
}

func findStudentsToNormalize(db *sql.DB) ([]Student, error) {
	query := `
		SELECT id, name, phone, email, address
		FROM students
		ORDER BY id ASC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var s Student
		err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address)
		if err != nil {
			return nil, err
		}

		// Only include rows where trimming would change something
		if trimFields(s) != s {
			students = append(students, s)
		}
	}

	return students, rows.Err()
}

func trimFields(s Student) Student {
	s.Name = strings.TrimSpace(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
	s.Address = strings.TrimSpace(s.Address)
	return s
}

func invalidFields(s Student) []string {
	values := map[string]string{
		"name":    s.Name,
		"phone":   s.Phone,
		"email":   s.Email,
		"address": s.Address,
	}

	var failed []string
	for _, field := range []string{"name", "phone", "email", "address"} {
		if !fieldPatterns[field].MatchString(values[field]) {
			failed = append(failed, field)
		}
	}
	return failed
}

func updateStudent(db *sql.DB, s Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE students SET name = ?, phone = ?, email = ?, address = ?
		WHERE id = ?
	`, s.Name, s.Phone, s.Email, s.Address, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	return tx.Commit()
}
