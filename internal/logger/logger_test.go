package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureJSON installs a JSON logger writing into the returned buffer, using
// the same NewConfig path cmd/app wires at startup.
func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg := NewConfig(LogLevelInfo, LogFormatJSON, DefaultServiceName, "1.2.3", EnvironmentTest, false)
	InitLoggerWithWriter(cfg, &buf)
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	scanner := bufio.NewScanner(buf)
	require.True(t, scanner.Scan(), "expected at least one log line")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	return entry
}

func TestJSONLogging(t *testing.T) {
	buf := captureJSON(t)

	// Act
	Info("price refresh complete", "items", 42, "source", "market")

	// Assert
	entry := decodeLine(t, buf)
	assert.Equal(t, DefaultServiceName, entry[AttrKeyService])
	assert.Equal(t, "1.2.3", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "price refresh complete", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(42), entry["items"])
	assert.Equal(t, "market", entry["source"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig(LogLevelWarn, LogFormatJSON, DefaultServiceName, DefaultVersion, EnvironmentTest, false)
	InitLoggerWithWriter(cfg, &buf)

	// Act
	Info("below threshold")
	Warn("at threshold")

	// Assert
	entry := decodeLine(t, &buf)
	assert.Equal(t, "at threshold", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestRequestIDContext(t *testing.T) {
	t.Run("Best Case: round-trips through the context", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-123")
		assert.Equal(t, "req-123", GetRequestID(ctx))
	})

	t.Run("Best Case: FromContext stamps the request_id attribute", func(t *testing.T) {
		buf := captureJSON(t)
		ctx := WithRequestID(context.Background(), "req-456")

		// Act
		FromContext(ctx).Info("expansion started")

		// Assert
		entry := decodeLine(t, buf)
		assert.Equal(t, "req-456", entry[AttrKeyRequestID])
	})

	t.Run("Error Case: absent request ID yields empty string and bare logger", func(t *testing.T) {
		buf := captureJSON(t)
		ctx := context.Background()
		assert.Empty(t, GetRequestID(ctx))

		// Act
		FromContext(ctx).Info("no request scope")

		// Assert
		entry := decodeLine(t, buf)
		_, hasID := entry[AttrKeyRequestID]
		assert.False(t, hasID)
	})
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestConfigPresets(t *testing.T) {
	t.Run("Default preset names this service", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, LogLevelInfo, cfg.Level)
		assert.Equal(t, LogFormatText, cfg.Format)
	})

	t.Run("Production preset is quiet JSON without source", func(t *testing.T) {
		cfg := ProductionConfig()
		assert.Equal(t, LogFormatJSON, cfg.Format)
		assert.Equal(t, LogLevelInfo, cfg.Level)
		assert.Equal(t, EnvironmentProduction, cfg.Environment)
		assert.False(t, cfg.AddSource)
	})

	t.Run("Development preset is verbose text with source", func(t *testing.T) {
		cfg := DevelopmentConfig()
		assert.Equal(t, LogFormatText, cfg.Format)
		assert.Equal(t, LogLevelDebug, cfg.Level)
		assert.True(t, cfg.AddSource)
	})

	t.Run("NewConfig carries explicit values through", func(t *testing.T) {
		cfg := NewConfig(LogLevelDebug, LogFormatJSON, "indyplan", "2.0.0", EnvironmentStaging, true)
		assert.Equal(t, "indyplan", cfg.ServiceName)
		assert.Equal(t, "2.0.0", cfg.Version)
		assert.Equal(t, EnvironmentStaging, cfg.Environment)
		assert.True(t, cfg.AddSource)
	})
}

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelWarning, "WARN"},
		{LogLevelError, "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.want, cfg.LogLevel().String())
		})
	}
}
