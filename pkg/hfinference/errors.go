package hfinference

import "errors"

var (
	// ErrUnrecognizedShape is returned when the response envelope matches
	// neither of the two known shapes (array with generated_text on the
	// first element, or object with a top-level generated_text).
	ErrUnrecognizedShape = errors.New("hfinference: unrecognized response shape")

	// ErrEmptyGeneration is returned when the envelope decoded but carried
	// no generated text.
	ErrEmptyGeneration = errors.New("hfinference: empty generation in response")
)
