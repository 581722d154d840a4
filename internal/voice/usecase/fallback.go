package usecase

import (
	"time"

	"personal-task-tracker/internal/model"
)

// fallbackExtract builds a complete structured task guess from the raw
// transcript alone, with no external dependency. It is total and
// deterministic given the anchor time: the same transcript and anchor always
// produce the same output.
func (uc *implUseCase) fallbackExtract(transcript string, now time.Time) model.ParsedTaskData {
	data := model.ParsedTaskData{
		Title:    normalizeTitle(transcript, transcript),
		Priority: classifyPriority(transcript),
		Status:   model.StatusToDo,
	}

	if date, ok := uc.dates.ResolveDate("", transcript, now); ok {
		data.DueDate = &date
	}
	if clock, ok := uc.dates.ResolveTime(transcript); ok {
		data.DueTime = &clock
	}

	return data
}

// fallbackResult wraps fallbackExtract as a full parse result. Confidence is
// fixed low: the output is structurally guaranteed but semantically
// unverified.
func (uc *implUseCase) fallbackResult(transcript string, now time.Time) model.VoiceParseResult {
	return model.VoiceParseResult{
		Transcript: transcript,
		Parsed:     uc.fallbackExtract(transcript, now),
		Confidence: model.ConfidenceLow,
	}
}
