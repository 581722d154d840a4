package usecase

import (
	"context"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/voice"
	"personal-task-tracker/internal/voice/repository"
)

// RecordCommand persists the audit record of one parse call.
func (uc *implUseCase) RecordCommand(ctx context.Context, sc model.Scope, result model.VoiceParseResult, success bool) error {
	_, err := uc.repo.CreateCommand(ctx, repository.CreateCommandOptions{
		UserID:     sc.UserID,
		Transcript: result.Transcript,
		Parsed:     result.Parsed,
		Success:    success,
	})
	return err
}

// History lists the user's recent voice commands.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input voice.HistoryInput) (voice.HistoryOutput, error) {
	commands, err := uc.repo.ListCommands(ctx, repository.ListCommandsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return voice.HistoryOutput{}, err
	}
	return voice.HistoryOutput{Commands: commands, Count: len(commands)}, nil
}
