package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubTagger returns a fixed entity list, or an error when err is set.
type stubTagger struct {
	entities []Entity
	err      error
}

func (s *stubTagger) Tag(_ context.Context, _ string) ([]Entity, error) {
	return s.entities, s.err
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "plain name on first line",
			text:     "jane doe\njane@example.com\n+91 9876543210",
			expected: "Jane Doe",
		},
		{
			name:     "name after heading word",
			text:     "RESUME\nJohn Michael Smith\njohn@gmail.com",
			expected: "John Michael Smith",
		},
		{
			name:     "digits and punctuation stripped",
			text:     "Jane Doe (+91) 98765-43210\nDeveloper",
			expected: "Jane Doe",
		},
		{
			name:     "single word never qualifies",
			text:     "Jane\nSKILLS\nPython",
			expected: "",
		},
		{
			name:     "curriculum vitae line skipped",
			text:     "Curriculum Vitae\nAmit Kumar Sharma",
			expected: "Amit Kumar Sharma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(context.Background(), tt.text, nil))
		})
	}
}

func TestExtractNameTaggerFallback(t *testing.T) {
	// No qualifying line in the first 10; the tagger supplies the name.
	text := "SUMMARY\nExperienced developer with 5 years in backend systems."

	tagger := &stubTagger{entities: []Entity{
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "Priya Nair", Label: LabelPerson},
	}}
	assert.Equal(t, "Priya Nair", ExtractName(context.Background(), text, tagger))

	// Single-token PERSON spans are rejected.
	tagger = &stubTagger{entities: []Entity{{Text: "Priya", Label: LabelPerson}}}
	assert.Equal(t, "", ExtractName(context.Background(), text, tagger))

	// A tagger failure degrades to empty, never an error.
	tagger = &stubTagger{err: errors.New("service unavailable")}
	assert.Equal(t, "", ExtractName(context.Background(), text, tagger))
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "single address",
			text:     "Contact: jane.doe@company.io",
			expected: "jane.doe@company.io",
		},
		{
			name:     "personal provider preferred",
			text:     "work: jane@bigcorp.com personal: jane.doe@gmail.com",
			expected: "jane.doe@gmail.com",
		},
		{
			name:     "outlook preferred over corporate",
			text:     "jane@bigcorp.com | jdoe@outlook.com",
			expected: "jdoe@outlook.com",
		},
		{
			name:     "first match when no priority domain",
			text:     "a@first.org then b@second.org",
			expected: "a@first.org",
		},
		{
			name:     "no match",
			text:     "no contact details here",
			expected: "",
		},
		{
			name:     "one-letter TLD rejected",
			text:     "bad@host.x",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "indian mobile preferred",
			text:     "Office: 044-2345-6789 Mobile: +91 98765-4321",
			expected: "+91987654321",
		},
		{
			name:     "ten digit number preferred over longer",
			text:     "Fax: 1-800-555-0199-22 Cell: 9876543210",
			expected: "9876543210",
		},
		{
			name:     "formatted number normalized",
			text:     "Call (987) 654-3210 today",
			expected: "9876543210",
		},
		{
			name:     "first candidate when no preference applies",
			text:     "+44 20 7946 09581",
			expected: "+4420794609581",
		},
		{
			name:     "no digits",
			text:     "email only",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPhone(tt.text))
		})
	}
}
