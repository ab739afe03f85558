package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarmaze/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"INFO", logging.LevelInfo},
		{"", logging.LevelInfo},
		{"Warning", logging.LevelWarn},
		{"warn", logging.LevelWarn},
		{" error ", logging.LevelError},
	}
	for _, tc := range cases {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", logging.LevelDebug.String())
	assert.Equal(t, "ERROR", logging.LevelError.String())
	assert.Equal(t, "UNKNOWN", logging.Level(42).String())
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})

	log.Info("hidden")
	log.Warn("shown", "cost", 12)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "cost=12")
}

func TestNew_ZeroConfigLogsInfo(t *testing.T) {
	var cfg logging.Config
	assert.Equal(t, logging.LevelInfo, cfg.Level)

	var buf bytes.Buffer
	cfg.Output = &buf
	log := logging.New(cfg)
	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Format: logging.FormatJSON, Output: &buf, Service: "astarmaze"})
	log.Info("Path found with cost:", "cost", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "Path found with cost:", rec["msg"])
	assert.Equal(t, "astarmaze", rec["service"])
	assert.EqualValues(t, 7, rec["cost"])
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.NotPanics(t, func() { log.Error("nothing") })
}
