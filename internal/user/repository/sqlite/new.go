package sqlite

import (
	"database/sql"
	"fmt"

	"personal-task-tracker/internal/user/repository"
	"personal-task-tracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed UserRepository.
func New(db *sql.DB, l log.Logger) repository.UserRepository {
	if db == nil {
		panic("user/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlite.%s", method)
}
