package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf, Service: "showcase-test"})

	l.Info().Str("component", "theme").Msg("theme applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "showcase-test", entry["service"])
	assert.Equal(t, "theme", entry["component"])
	assert.Equal(t, "theme applied", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DefaultService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"service":"`+DefaultService+`"`)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Output: &buf})

	l.Debug().Msg("debug")
	assert.Zero(t, buf.Len())
	l.Info().Msg("info")
	assert.NotZero(t, buf.Len())
}
