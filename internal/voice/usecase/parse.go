package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/voice"
	"personal-task-tracker/pkg/hfinference"
)

// Generation settings for the task-parsing request: short output, low
// temperature for near-deterministic JSON.
const (
	maxNewTokens = 250
	temperature  = 0.3
	topP         = 0.9
)

// modelTaskPayload is the JSON object the model is instructed to return.
type modelTaskPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"dueDate"`
	DueTime     string  `json:"dueTime"`
	Status      string  `json:"status"`
	Confidence  string  `json:"confidence"`
}

// Parse converts a voice transcript into a structured task guess. The model
// path is attempted first; any failure (transport, envelope, malformed JSON)
// degrades to the rule-based extraction with low confidence. Parse never
// fails for a non-empty transcript.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input voice.ParseInput) (model.VoiceParseResult, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return model.VoiceParseResult{}, voice.ErrEmptyTranscript
	}

	now := uc.now()
	result := uc.modelExtract(ctx, input.Transcript, now)

	uc.l.Infof(ctx, "Parse: user=%s confidence=%s title=%q", sc.UserID, result.Confidence, result.Parsed.Title)
	return result, nil
}

// modelExtract runs the model-backed extraction. Every exit path returns a
// complete result: errors never propagate past this boundary.
func (uc *implUseCase) modelExtract(ctx context.Context, transcript string, now time.Time) model.VoiceParseResult {
	prompt := hfinference.BuildTaskPrompt(transcript, now.Format("2006-01-02"), now.Format("15:04"))

	raw, err := uc.llm.Generate(ctx, &hfinference.Request{
		Inputs: prompt,
		Parameters: hfinference.Parameters{
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
			TopP:           topP,
			ReturnFullText: false,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "modelExtract: inference call failed, using rule-based extraction: %v", err)
		return uc.fallbackResult(transcript, now)
	}

	var payload modelTaskPayload
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &payload); err != nil {
		uc.l.Warnf(ctx, "modelExtract: malformed model JSON, using rule-based extraction: %v", err)
		result := uc.fallbackResult(transcript, now)
		result.RawResponse = raw
		return result
	}

	return model.VoiceParseResult{
		Transcript:  transcript,
		Parsed:      uc.repairFields(payload, transcript, now),
		Confidence:  repairConfidence(payload.Confidence),
		RawResponse: raw,
	}
}

// repairFields validates and normalizes every field of the model's output
// individually: an unusable field degrades to absent or to the rule-based
// value without failing the others.
func (uc *implUseCase) repairFields(payload modelTaskPayload, transcript string, now time.Time) model.ParsedTaskData {
	title := payload.Title
	if strings.TrimSpace(title) == "" {
		title = transcript
	}

	data := model.ParsedTaskData{
		Title:    normalizeTitle(title, transcript),
		Priority: classifyPriority(payload.Priority),
		Status:   model.StatusToDo,
	}

	if date, ok := uc.dates.ResolveDate(payload.DueDate, transcript, now); ok {
		data.DueDate = &date
	}

	if clock := strings.TrimSpace(payload.DueTime); clock != "" && clock != "null" {
		data.DueTime = &clock
	} else if clock, ok := uc.dates.ResolveTime(transcript); ok {
		data.DueTime = &clock
	}

	return data
}

// repairConfidence keeps the model's self-assessment when valid, defaulting
// to medium.
func repairConfidence(c string) model.Confidence {
	conf := model.Confidence(strings.ToLower(strings.TrimSpace(c)))
	if !conf.Valid() {
		return model.ConfidenceMedium
	}
	return conf
}

// now returns the current time in the configured timezone.
func (uc *implUseCase) now() time.Time {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}
