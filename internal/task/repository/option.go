package repository

import (
	"time"

	"personal-task-tracker/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.Priority
	DueDate     *time.Time
	DueTime     *string
	CreatedVia  model.CreatedVia
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID   string
	Status   model.TaskStatus
	Priority model.Priority
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateTaskOptions holds the full replacement state for an existing Task.
// The use case resolves partial updates against the current row first.
type UpdateTaskOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.Priority
	DueDate     *time.Time
	DueTime     *string
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
