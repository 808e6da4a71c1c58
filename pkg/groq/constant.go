package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default vision-capable model
	DefaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
