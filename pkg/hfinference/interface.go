package hfinference

import "context"

// IInference defines the interface for the Hugging Face Inference API client.
// Implementations are safe for concurrent use.
type IInference interface {
	// Generate sends a single text-generation request and returns the
	// generated text extracted from the response envelope.
	Generate(ctx context.Context, req *Request) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Inference API client with the given configuration
func New(cfg Config) (IInference, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHFImpl(cfg), nil
}
