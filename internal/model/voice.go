package model

import "time"

// Confidence is the parser's coarse self-assessment of extraction reliability.
// ConfidenceLow is structurally guaranteed whenever the rule-based path
// produced the final answer.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is a known confidence level.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// ParsedTaskData is the structured output of the voice parsing pipeline.
// Title is never empty. Description is reserved for future enrichment and is
// always nil in the current pipeline.
type ParsedTaskData struct {
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time // calendar date, midnight local
	DueTime     *string    // "HH:MM", 24-hour
	Status      TaskStatus // always StatusToDo for voice-created tasks
}

// VoiceParseResult wraps ParsedTaskData with the original transcript
// (preserved verbatim for audit) and an optional raw model response kept for
// diagnostics only, never parsed twice.
type VoiceParseResult struct {
	Transcript  string
	Parsed      ParsedTaskData
	Confidence  Confidence
	RawResponse string
}

// VoiceCommand is the persisted audit record of one parse call.
type VoiceCommand struct {
	ID         string
	UserID     string
	Transcript string
	Parsed     ParsedTaskData
	Success    bool
	CreatedAt  time.Time
}
