package hfinference

import "time"

const (
	// DefaultModel is the default text-generation model
	DefaultModel = "mistralai/Mistral-7B-Instruct-v0.2"

	// DefaultBaseURL is the Hugging Face Inference API endpoint
	DefaultBaseURL = "https://api-inference.huggingface.co/models"

	// DefaultTimeout is the default HTTP client timeout. Expiry is treated as
	// ordinary failure; the client never retries.
	DefaultTimeout = 30 * time.Second
)
