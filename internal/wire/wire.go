// Package wire provides dependency injection for the tally application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/tally/internal/adapters/sqlite"
	"github.com/example/tally/internal/app"
	"github.com/example/tally/internal/db"
	"github.com/example/tally/internal/ports/primary"
)

var (
	studentService primary.StudentService
	taskService    primary.TaskService
	sessionService primary.SessionService
	once           sync.Once
)

// StudentService returns the singleton StudentService instance.
func StudentService() primary.StudentService {
	once.Do(initServices)
	return studentService
}

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	studentRepo := sqlite.NewStudentRepository(database)
	taskRepo := sqlite.NewTaskRepository(database)
	sessionRepo := sqlite.NewSessionRepository(database)

	studentService = app.NewStudentService(studentRepo)
	taskService = app.NewTaskService(taskRepo)
	sessionService = app.NewSessionService(sessionRepo, studentRepo)
}
