package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	l := WithComponent("ingestion")
	l.Debug().Str("file", "a.pdf").Msg("extracted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "ingestion", entry["component"])
	assert.Equal(t, "a.pdf", entry["file"])
	assert.Equal(t, "extracted", entry["message"])
}

func TestInitWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "warn"}, &buf)

	Logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "verbose"}, &buf)

	Logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	Logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "info", Format: "pretty"}, &buf)

	Logger.Error().Msg("boom")
	assert.Contains(t, buf.String(), "boom")
	assert.NotContains(t, buf.String(), `"message"`)
}
