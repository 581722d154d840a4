package model

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// CreatedVia records how a task entered the system.
type CreatedVia string

const (
	CreatedViaManual CreatedVia = "manual"
	CreatedViaVoice  CreatedVia = "voice"
)

// Task is the core entity of the tracker.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	DueDate     *time.Time // calendar date, midnight local
	DueTime     *string    // "HH:MM", 24-hour
	CreatedVia  CreatedVia
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
