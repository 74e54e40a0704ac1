package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job": "jobs/backend.txt",
		"resumes_dir": "resumes",
		"format": "json",
		"workers": 4,
		"top": 10,
		"quiet": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jobs/backend.txt", cfg.Job)
	assert.Equal(t, "resumes", cfg.ResumesDir)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10, cfg.Top)
	assert.False(t, cfg.Diagnostics())
	assert.True(t, cfg.SelfCheck())
}

func TestDefaults_PrintDiagnosticsAndSelfCheck(t *testing.T) {
	cfg := Defaults()
	assert.True(t, cfg.Diagnostics())
	assert.True(t, cfg.SelfCheck())

	cfg.Quiet, cfg.NoSelfCheck = true, true
	assert.False(t, cfg.Diagnostics())
	assert.False(t, cfg.SelfCheck())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	vocab := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(vocab, []byte("technical: [go]\n"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"empty", Config{}, ""},
		{"existing vocabulary", Config{Vocabulary: vocab}, ""},
		{"bad format", Config{Format: "xml"}, "Format"},
		{"negative top", Config{Top: -1}, "Top"},
		{"too many workers", Config{Workers: 100}, "Workers"},
		{"bad log level", Config{LogLevel: "trace"}, "LogLevel"},
		{"missing vocabulary", Config{Vocabulary: "/nonexistent/vocab.yaml"}, "vocabulary file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Job: "custom.txt", Workers: 3}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom.txt", merged.Job)
	assert.Equal(t, DefaultResumesDir, merged.ResumesDir)
	assert.Equal(t, DefaultFormat, merged.Format)
	assert.Equal(t, 3, merged.Workers)
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)
	assert.Equal(t, 0, merged.Top)
	// original untouched
	assert.Empty(t, cfg.ResumesDir)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, "debug", cfg.Logging().Level)
	assert.Equal(t, "json", cfg.Logging().Format)
}
