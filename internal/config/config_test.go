package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"job_url": "https://example.com/jobs/42",
		"api_key": "test-key",
		"model": "gemini-2.5-flash",
		"timeout_seconds": 45,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/jobs/42", cfg.JobURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfig(t, `{"job_url": `)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty", cfg: Config{}},
		{name: "valid url", cfg: Config{JobURL: "https://example.com/jobs"}},
		{name: "invalid url", cfg: Config{JobURL: "not a url"}, wantErr: true},
		{name: "job and job_url exclusive", cfg: Config{Job: "text", JobURL: "https://example.com"}, wantErr: true},
		{name: "timeout in range", cfg: Config{TimeoutSeconds: 120}},
		{name: "timeout too large", cfg: Config{TimeoutSeconds: 601}, wantErr: true},
		{name: "negative timeout", cfg: Config{TimeoutSeconds: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "flag-key"}
	defaults := Config{APIKey: "file-key", Model: "gemini-2.5-flash", TimeoutSeconds: 60}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "flag-key", merged.APIKey)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, 60, merged.TimeoutSeconds)
}
