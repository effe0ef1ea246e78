package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeFallback(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			name: "complete document",
			json: `{
				"name": "Jane Doe",
				"email": "jane@example.com",
				"phone": "+919876543210",
				"skills": ["python", "docker"],
				"experience_years": 2.5,
				"education": ["B.Tech in Computer Science"],
				"projects": [
					{"title": "Chat App", "description": "Realtime chat", "tech_stack": ["go", "redis"]}
				]
			}`,
			wantErr: false,
		},
		{
			name:    "null identity fields",
			json:    `{"name": null, "email": null, "phone": null, "skills": []}`,
			wantErr: false,
		},
		{
			name:    "education entries as objects",
			json:    `{"education": [{"degree": "B.Sc", "institution": "MIT"}]}`,
			wantErr: false,
		},
		{
			name:    "skills must be strings",
			json:    `{"skills": [1, 2]}`,
			wantErr: true,
		},
		{
			name:    "projects must be objects",
			json:    `{"projects": ["not an object"]}`,
			wantErr: true,
		},
		{
			name:    "tech stack must be an array of strings",
			json:    `{"projects": [{"title": "App", "tech_stack": "go, redis"}]}`,
			wantErr: true,
		},
		{
			name:    "top level must be an object",
			json:    `["a", "b"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeFallback(tt.json)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				assert.True(t, errors.As(err, &ve))
				assert.NotEmpty(t, ve.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResumeFallbackMalformedDocument(t *testing.T) {
	err := ValidateResumeFallback(`{"name": `)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidationErrorFormatting(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "skills.0", Message: "Invalid type. Expected: string, given: integer"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "skills.0")
}
