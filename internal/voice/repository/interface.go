package repository

import (
	"context"
	"errors"

	"personal-task-tracker/internal/model"
)

var (
	ErrFailedToInsert = errors.New("failed to insert voice command")
	ErrFailedToList   = errors.New("failed to list voice commands")
)

// CommandRepository defines data access for the voice command audit log.
type CommandRepository interface {
	CreateCommand(ctx context.Context, opt CreateCommandOptions) (model.VoiceCommand, error)
	ListCommands(ctx context.Context, opt ListCommandsOptions) ([]model.VoiceCommand, error)
}
