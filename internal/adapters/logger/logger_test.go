package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mvnrepo/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("configuring repo")
	lg.Warn("property file missing")

	assert.Equal(t, "configuring repo\n! property file missing\n", buf.String())
}

func TestLogger_Error_Chain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(
		zerr.With(zerr.New("malformed property file"), "path", "local.properties"),
		"failed to configure repository",
	)
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "✗ Error: failed to configure repository")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ malformed property file (path=local.properties)")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(slog.LevelWarn)

	lg.Info("hidden")
	lg.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("Maven property file not found: local.properties")
	lg.Error(errors.New("permission denied"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var warn map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "Maven property file not found: local.properties", warn["msg"])

	var errLine map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &errLine))
	assert.Equal(t, "ERROR", errLine["level"])
	assert.Equal(t, "permission denied", errLine["error"])
}

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.Wrap(
		zerr.Wrap(errors.New("root cause"), "middle layer"),
		"outer layer",
	)

	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 3)

	messages := make([]string, len(entries))
	for i, e := range entries {
		messages[i], _ = logger.ErrorEntryFields(e)
	}
	assert.Equal(t, []string{"outer layer", "middle layer", "root cause"}, messages)

	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries_Metadata(t *testing.T) {
	sentinel := zerr.New("invalid Maven repository URL")
	err := zerr.With(
		zerr.Wrap(errors.Join(sentinel, errors.New("missing protocol scheme")), "failed to parse repository URL"),
		"url", "://bad",
	)

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	assert.Equal(t, "Error: failed to parse repository URL (url=://bad)\n"+
		"\n"+
		"  Caused by:\n"+
		"    → invalid Maven repository URL\n"+
		"    → missing protocol scheme", got)
	assert.ErrorIs(t, err, sentinel)
}
