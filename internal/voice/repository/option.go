package repository

import "personal-task-tracker/internal/model"

// CreateCommandOptions holds parameters for inserting a voice command record.
type CreateCommandOptions struct {
	UserID     string
	Transcript string
	Parsed     model.ParsedTaskData
	Success    bool
}

// ListCommandsOptions holds filter parameters for listing voice commands.
type ListCommandsOptions struct {
	UserID string
	Limit  int
}
