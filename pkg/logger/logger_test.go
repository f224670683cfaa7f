package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
}

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "info", Options{JSON: true, Fields: map[string]interface{}{"service": "studio"}})
	require.NoError(t, err)

	l.With("request_id", "abc").Error("boom: %s", "db down")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom: db down", entry["msg"])
	assert.Equal(t, "studio", entry["service"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "error", entry["level"])
}

func TestLogger_InvalidLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New(path, "info")
	require.NoError(t, err)
	l.Info("hello")
	assert.NoError(t, l.Close())
	assert.FileExists(t, path)
}
