package sqlite

import (
	"database/sql"
	"fmt"

	"personal-task-tracker/internal/voice/repository"
	"personal-task-tracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed CommandRepository for the voice domain.
func New(db *sql.DB, l log.Logger) repository.CommandRepository {
	if db == nil {
		panic("voice/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("voice/repository/sqlite.%s", method)
}
