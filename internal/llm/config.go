// Package llm provides the Gemini client and the structured-extraction
// fallback. The fallback is a last resort: it runs only when the rule-based
// pass finds no skills or no projects, and any failure degrades to an empty
// result instead of aborting the parse.
package llm

import "time"

// Provider represents an LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider.
const ProviderGemini Provider = "gemini"

// DefaultModel is the model used for structured resume extraction.
// Extraction is a transcription task, so the fast model is enough.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds each extraction call. There is no retry; a timeout
// degrades to the rule-based result.
const DefaultTimeout = 30 * time.Second

// PromptTextLimit is how much raw resume text is sent to the model.
const PromptTextLimit = 4000

// Config holds the model configuration for fallback extraction.
type Config struct {
	Provider Provider
	Model    string
	Timeout  time.Duration
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
		Timeout:  DefaultTimeout,
	}
}
