package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.DebugLevel,
		Output: &buf,
		Format: "json",
	}).ForClass("tree", "Tree")

	ctx := WithTraceID(context.Background(), 42)
	logger.Info(ctx, "inserted", MapFields{"key": 7})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inserted", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(7), entry["key"])
	assert.Equal(t, float64(42), entry["trace_id"])
	assert.Equal(t, "tree", entry["package"])
	assert.Equal(t, "Tree", entry["class"])
}

func TestLogrusLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.WarnLevel,
		Output: &buf,
	})

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	assert.Equal(t, 0, buf.Len())

	logger.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetTraceIDMissing(t *testing.T) {
	assert.Equal(t, int64(0), GetTraceID(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
}
