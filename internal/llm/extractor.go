package llm

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// ResumeExtractor runs strict-schema resume extraction against an LLM.
type ResumeExtractor struct {
	client Client
	config *Config
}

// NewResumeExtractor creates an extractor over the given client.
func NewResumeExtractor(client Client, config *Config) *ResumeExtractor {
	if config == nil {
		config = DefaultConfig()
	}
	return &ResumeExtractor{client: client, config: config}
}

// Extract sends the raw resume text to the model and parses the response
// under the fallback schema. The text is truncated to PromptTextLimit before
// prompting, and the call is bounded by the configured timeout.
func (e *ResumeExtractor) Extract(ctx context.Context, text string) (*types.FallbackResult, error) {
	if len(text) > PromptTextLimit {
		text = text[:PromptTextLimit]
	}

	template := prompts.MustGet("extraction.json", "extract-resume")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": text,
	})

	callCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	raw, err := e.client.GenerateJSON(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeJSON(raw)
	if normalized == "" {
		return nil, &ParseError{Message: "response contains no JSON object"}
	}

	if err := schemas.ValidateResumeFallback(normalized); err != nil {
		return nil, &ParseError{Message: "response failed schema validation", Cause: err}
	}

	var result types.FallbackResult
	if err := json.Unmarshal([]byte(normalized), &result); err != nil {
		return nil, &ParseError{Message: "failed to unmarshal response", Cause: err}
	}

	return &result, nil
}
