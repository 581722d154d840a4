package task

import (
	"time"

	"personal-task-tracker/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.Priority
	DueDate     *time.Time
	DueTime     *string
	CreatedVia  model.CreatedVia
}

type ListInput struct {
	Status   model.TaskStatus
	Priority model.Priority
	Limit    int
	Offset   int
}

type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Priority    *model.Priority
	DueDate     *time.Time
	DueTime     *string
	ClearDue    bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
