package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/internal/voice"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/hfinference"
)

func newInferenceClient(t *testing.T, baseURL string) hfinference.IInference {
	t.Helper()
	client, err := hfinference.New(hfinference.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("hfinference.New: %v", err)
	}
	return client
}

func newModelBackedUseCase(t *testing.T, baseURL string) *implUseCase {
	t.Helper()
	dates, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return New(nopLogger{}, newInferenceClient(t, baseURL), dates, nil, "UTC")
}

func TestParseEmptyTranscript(t *testing.T) {
	uc := newModelBackedUseCase(t, "http://127.0.0.1:1")

	for _, transcript := range []string{"", "   ", "\t\n"} {
		_, err := uc.Parse(context.Background(), model.Scope{UserID: "u1"}, voice.ParseInput{Transcript: transcript})
		if err != voice.ErrEmptyTranscript {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyTranscript", transcript, err)
		}
	}
}

func TestModelExtractSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text": "{\"title\": \"buy groceries\", \"description\": null, \"priority\": \"High\", \"dueDate\": \"tomorrow\", \"dueTime\": \"\", \"status\": \"To Do\", \"confidence\": \"high\"}"}]`))
	}))
	defer srv.Close()

	uc := newModelBackedUseCase(t, srv.URL)
	result := uc.modelExtract(context.Background(), "buy groceries tomorrow evening, high priority", testAnchor)

	if result.Confidence != model.ConfidenceHigh {
		t.Errorf("Confidence = %s, want high", result.Confidence)
	}
	if result.RawResponse == "" {
		t.Error("RawResponse empty, want the model's raw text preserved")
	}
	if result.Parsed.Title != "Buy groceries" {
		t.Errorf("Title = %q, want %q", result.Parsed.Title, "Buy groceries")
	}
	if result.Parsed.Priority != model.PriorityHigh {
		t.Errorf("Priority = %s, want High", result.Parsed.Priority)
	}
	if result.Parsed.DueDate == nil || result.Parsed.DueDate.Format("2006-01-02") != "2024-01-16" {
		t.Errorf("DueDate = %v, want 2024-01-16", result.Parsed.DueDate)
	}
	// The model left dueTime empty, so the transcript mention fills it in.
	if result.Parsed.DueTime == nil || *result.Parsed.DueTime != "18:00" {
		t.Errorf("DueTime = %v, want 18:00", result.Parsed.DueTime)
	}
	if result.Parsed.Status != model.StatusToDo {
		t.Errorf("Status = %s, want To Do", result.Parsed.Status)
	}
}

func TestModelExtractRepairsBadFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text": "{\"title\": \"\", \"priority\": \"mega\", \"dueDate\": \"whenever\", \"dueTime\": \"null\", \"status\": \"Done-ish\", \"confidence\": \"certain\"}"}]`))
	}))
	defer srv.Close()

	uc := newModelBackedUseCase(t, srv.URL)
	result := uc.modelExtract(context.Background(), "water the plants", testAnchor)

	if result.Parsed.Title != "Water the plants" {
		t.Errorf("Title = %q, want fallback from transcript", result.Parsed.Title)
	}
	if result.Parsed.Priority != model.PriorityMedium {
		t.Errorf("Priority = %s, want Medium for unrecognized value", result.Parsed.Priority)
	}
	if result.Parsed.DueDate != nil {
		t.Errorf("DueDate = %v, want absent for unresolvable hint", result.Parsed.DueDate)
	}
	if result.Parsed.DueTime != nil {
		t.Errorf("DueTime = %v, want absent for literal null", result.Parsed.DueTime)
	}
	if result.Parsed.Status != model.StatusToDo {
		t.Errorf("Status = %s, want To Do regardless of model output", result.Parsed.Status)
	}
	if result.Confidence != model.ConfidenceMedium {
		t.Errorf("Confidence = %s, want Medium for unrecognized value", result.Confidence)
	}
}

func TestModelExtractMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"generated_text": "I could not produce JSON, sorry."}]`))
	}))
	defer srv.Close()

	uc := newModelBackedUseCase(t, srv.URL)
	result := uc.modelExtract(context.Background(), "buy milk tomorrow", testAnchor)

	if result.Confidence != model.ConfidenceLow {
		t.Errorf("Confidence = %s, want low", result.Confidence)
	}
	if result.RawResponse != "I could not produce JSON, sorry." {
		t.Errorf("RawResponse = %q, want the raw text preserved for audit", result.RawResponse)
	}
	want := uc.fallbackExtract("buy milk tomorrow", testAnchor)
	if !reflect.DeepEqual(result.Parsed, want) {
		t.Errorf("Parsed = %+v, want rule-based extraction %+v", result.Parsed, want)
	}
}

func TestModelExtractTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	uc := newModelBackedUseCase(t, srv.URL)
	result := uc.modelExtract(context.Background(), "buy milk tomorrow", testAnchor)

	if !reflect.DeepEqual(result, uc.fallbackResult("buy milk tomorrow", testAnchor)) {
		t.Errorf("result = %+v, want exactly the rule-based fallback", result)
	}
}

func TestModelExtractServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "Model is currently loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	uc := newModelBackedUseCase(t, srv.URL)
	result := uc.modelExtract(context.Background(), "submit report by friday", testAnchor)

	if result.Confidence != model.ConfidenceLow {
		t.Errorf("Confidence = %s, want low", result.Confidence)
	}
	if result.Parsed.Title == "" {
		t.Error("Title empty, fallback must still produce one")
	}
}

// End to end with the model unreachable: the rule-based path alone carries
// the canonical example.
func TestModelExtractEndToEndFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	uc := newModelBackedUseCase(t, srv.URL)
	result := uc.modelExtract(context.Background(), "Add a task to call mom tomorrow evening, it's urgent", testAnchor)

	if result.Parsed.Title != "Call mom" {
		t.Errorf("Title = %q, want %q", result.Parsed.Title, "Call mom")
	}
	if result.Parsed.Priority != model.PriorityUrgent {
		t.Errorf("Priority = %s, want Urgent", result.Parsed.Priority)
	}
	if result.Parsed.DueDate == nil || result.Parsed.DueDate.Format("2006-01-02") != "2024-01-16" {
		t.Errorf("DueDate = %v, want 2024-01-16", result.Parsed.DueDate)
	}
	if result.Parsed.DueTime == nil || *result.Parsed.DueTime != "18:00" {
		t.Errorf("DueTime = %v, want 18:00", result.Parsed.DueTime)
	}
	if result.Parsed.Status != model.StatusToDo {
		t.Errorf("Status = %s, want To Do", result.Parsed.Status)
	}
	if result.Confidence != model.ConfidenceLow {
		t.Errorf("Confidence = %s, want low", result.Confidence)
	}
}
