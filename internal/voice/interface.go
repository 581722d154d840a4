package voice

import (
	"context"

	"personal-task-tracker/internal/model"
)

// UseCase defines the business logic interface for the voice domain.
type UseCase interface {
	// Parse converts a voice transcript into a structured task guess. For a
	// non-empty transcript it always returns a usable result: model failures
	// of any kind degrade to the rule-based extraction with low confidence.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (model.VoiceParseResult, error)

	// RecordCommand persists the audit record of one parse call.
	RecordCommand(ctx context.Context, sc model.Scope, result model.VoiceParseResult, success bool) error

	// History lists the user's recent voice commands, newest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}
