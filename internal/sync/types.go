package sync

import (
	"time"

	"personal-task-tracker/internal/model"
)

// EventType identifies what changed.
type EventType string

const (
	EventTaskCreated EventType = "task.created"
	EventTaskUpdated EventType = "task.updated"
	EventTaskDeleted EventType = "task.deleted"
)

// Event is one change notification fanned out to a user's open sessions.
type Event struct {
	Type      EventType   `json:"type"`
	TaskID    string      `json:"taskId"`
	Task      *model.Task `json:"task,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
