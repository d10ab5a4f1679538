package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"site": "blog"}).Component("site")
	log.Info("page written", "slug", "about", "bytes", 512)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "page written", entry["message"])
	require.Equal(t, "blog", entry["site"])
	require.Equal(t, "site", entry["component"])
	require.Equal(t, "about", entry["slug"])
	require.InDelta(t, 512, entry["bytes"], 0)
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "render failed", "page", "about")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "render failed", entry["message"])
	require.Equal(t, "about", entry["page"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerAutoFormatIsJSONOffTerminal(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn("stylesheet has extra classes")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Format: FormatConsole, Writer: buf})
	require.NoError(t, err)

	log.Info("built", "pages", 3)
	out := buf.String()
	require.Contains(t, out, "built")
	require.Contains(t, out, "pages=3")
	require.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("ignored")
		nilLog.Component("x").Error(errors.New("e"), "ignored")
		Nop().Info("ignored", "k", "v")
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatAuto, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)
}
