package voice

import "personal-task-tracker/internal/model"

// ParseInput is the input for parsing one voice transcript.
type ParseInput struct {
	Transcript string // raw speech-to-text output, non-empty
}

// HistoryInput is the input for listing recent voice commands.
type HistoryInput struct {
	Limit int // max records (default 20)
}

// HistoryOutput is the result of a voice history listing.
type HistoryOutput struct {
	Commands []model.VoiceCommand
	Count    int
}
