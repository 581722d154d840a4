package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newHFImpl creates a new Inference API implementation
func newHFImpl(cfg Config) *hfImpl {
	return &hfImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends one generation request to the Inference API. It is a
// single-attempt call: timeouts and transport errors surface as errors and
// are never retried here.
func (h *hfImpl) Generate(ctx context.Context, req *Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("hfinference: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.baseURL+"/"+h.model, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("hfinference: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("hfinference: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("hfinference: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hfinference: API error %d: %s", resp.StatusCode, string(raw))
	}

	return extractGeneratedText(raw)
}

// Model returns the model being used
func (h *hfImpl) Model() string {
	return h.model
}

// extractGeneratedText decodes the response envelope. The Inference API is
// known to answer in two shapes: a JSON array whose first element carries
// generated_text, or a bare object with a top-level generated_text. Anything
// else is an unrecognized shape.
func extractGeneratedText(raw []byte) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "", ErrUnrecognizedShape
	}

	switch trimmed[0] {
	case '[':
		var arr []generatedText
		if err := json.Unmarshal(raw, &arr); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
		}
		if len(arr) == 0 || arr[0].GeneratedText == "" {
			return "", ErrEmptyGeneration
		}
		return arr[0].GeneratedText, nil

	case '{':
		var obj generatedText
		if err := json.Unmarshal(raw, &obj); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
		}
		if obj.Error != "" {
			return "", fmt.Errorf("hfinference: API returned error: %s", obj.Error)
		}
		if obj.GeneratedText == "" {
			return "", ErrEmptyGeneration
		}
		return obj.GeneratedText, nil

	default:
		return "", ErrUnrecognizedShape
	}
}
