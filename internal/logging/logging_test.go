package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "empdash.log")

	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON, Output: OutputFile, File: path})
	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Str("operation", "test").Msg("hello")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"operation":"test"`)
}

func TestNewLoggerWithPath_FallbackWithoutFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputFile})
	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestNewLoggerWithPath_Level(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, NewLogger(Config{Level: "nonsense"}).GetLevel())
	assert.Equal(t, zerolog.WarnLevel, NewLogger(Config{Level: "WARN"}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLogger(Config{}).GetLevel())
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ComponentLogger(base, "engine").Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"engine"`)
}

func TestTraceIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	assert.Len(t, id, 26)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
}

func TestTraceHook(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(TraceHook{})
	ctx := ContextWithTraceID(context.Background(), "01TRACE")

	logger.Info().Ctx(ctx).Msg("traced")
	assert.Contains(t, buf.String(), `"trace_id":"01TRACE"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	assert.NotNil(t, FromContext(context.Background()))
}
