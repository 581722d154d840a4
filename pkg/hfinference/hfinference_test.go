package hfinference_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-task-tracker/pkg/hfinference"
)

func newTestClient(t *testing.T, url string) hfinference.IInference {
	t.Helper()
	client, err := hfinference.New(hfinference.Config{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: url,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestGenerateArrayEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Write([]byte(`[{"generated_text": "hello from array"}]`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	out, err := client.Generate(context.Background(), &hfinference.Request{Inputs: "hi"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "hello from array" {
		t.Errorf("got %q", out)
	}
}

func TestGenerateObjectEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_text": "hello from object"}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	out, err := client.Generate(context.Background(), &hfinference.Request{Inputs: "hi"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "hello from object" {
		t.Errorf("got %q", out)
	}
}

func TestGenerateUnrecognizedShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"just a string"`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Generate(context.Background(), &hfinference.Request{Inputs: "hi"})
	if !errors.Is(err, hfinference.ErrUnrecognizedShape) {
		t.Errorf("expected ErrUnrecognizedShape, got %v", err)
	}
}

func TestGenerateAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "model loading"}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Generate(context.Background(), &hfinference.Request{Inputs: "hi"})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestGenerateModelErrorField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "model overloaded"}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	_, err := client.Generate(context.Background(), &hfinference.Request{Inputs: "hi"})
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("expected error field surfaced, got %v", err)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := hfinference.New(hfinference.Config{}); err == nil {
		t.Error("expected error for missing APIKey")
	}
}

func TestBuildTaskPrompt(t *testing.T) {
	p := hfinference.BuildTaskPrompt("call mom tomorrow", "2024-01-15", "10:30")
	for _, want := range []string{"call mom tomorrow", "2024-01-15", "10:30", "Return ONLY valid JSON", "evening = 18:00"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
