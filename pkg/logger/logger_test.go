package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogger_WritesJSONWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithSink(zapcore.AddSync(&buf), zapcore.WarnLevel, nil)

	log.Info("skipped %d", 1)
	log.Warn("booking %s cancelled", "b-1")
	require.NoError(t, log.Close())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "booking b-1 cancelled", entry["msg"])
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salon.log")

	log, err := New(path, "debug")
	require.NoError(t, err)
	log.Debug("hello %s", "salon")
	require.NoError(t, log.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hello salon")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
