package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestConfigs(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.False(t, cfg.JSON)

	debug := DebugConfig()
	assert.Equal(t, slog.LevelDebug, debug.Level)
	assert.True(t, debug.JSON)
	assert.True(t, debug.AddSource)
}

func TestInit(t *testing.T) {
	t.Run("debug_level_sets_flag", func(t *testing.T) {
		captureLogs(t)
		assert.True(t, Debug)
	})

	t.Run("nil_output_uses_stderr", func(t *testing.T) {
		Init(Config{Level: slog.LevelInfo})
		assert.NotNil(t, Logger())
		assert.False(t, Debug)
	})
}

func TestLevels(t *testing.T) {
	buf := captureLogs(t)

	tests := []struct {
		name string
		log  func(string, ...any)
	}{
		{"info", Info},
		{"debug", DebugLog},
		{"warn", Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(tt.name+" message", KeyModal, "note")
			assert.Contains(t, buf.String(), tt.name+" message")
			assert.Contains(t, buf.String(), `"modal":"note"`)
		})
	}
}

func TestLogOperationMasksSecrets(t *testing.T) {
	buf := captureLogs(t)

	LogOperation("login", "password", "password123", KeyEmail, "demo@example.com")
	out := buf.String()
	assert.Contains(t, out, `"op":"login"`)
	assert.NotContains(t, out, "password123")
	assert.Contains(t, out, "demo@example.com")
}

func TestRequestContext(t *testing.T) {
	buf := captureLogs(t)

	id := GenerateRequestID()
	assert.Len(t, id, 16)
	assert.NotEqual(t, id, GenerateRequestID())

	ctx := WithRequestID(context.Background(), id)
	assert.Equal(t, id, RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "", RequestIDFromContext(nil)) //nolint:staticcheck

	cl := FromContext(ctx).With(KeyPath, "/api/auth/login")
	cl.Info("handled")
	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), "/api/auth/login")
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := EnsureRequestID(context.Background())
	require.Len(t, id, 16)
	assert.Equal(t, id, RequestIDFromContext(ctx))

	same, again := EnsureRequestID(ctx)
	assert.Equal(t, id, again)
	assert.Equal(t, ctx, same)
}

func TestMasking(t *testing.T) {
	t.Run("sensitive_fields", func(t *testing.T) {
		assert.True(t, IsSensitiveField("password"))
		assert.True(t, IsSensitiveField("authToken"))
		assert.True(t, IsSensitiveField("X-Auth-Header"))
		assert.False(t, IsSensitiveField("email"))
		assert.False(t, IsSensitiveField("title"))
	})

	t.Run("mask_value", func(t *testing.T) {
		assert.Equal(t, "", MaskValue(""))
		assert.Equal(t, "***", MaskValue("abc"))
		assert.Equal(t, "********", MaskValue("mock-jwt-token-1-1700000000000"))
	})

	t.Run("mask_partial", func(t *testing.T) {
		assert.Equal(t, "moc***", MaskPartial("mock-jwt-token", 3))
		assert.Equal(t, "**", MaskPartial("ab", 3))
	})

	t.Run("mask_email", func(t *testing.T) {
		assert.Equal(t, "d***@example.com", MaskEmail("demo@example.com"))
		assert.Equal(t, "********", MaskEmail("not-an-email"))
	})

	t.Run("mask_args", func(t *testing.T) {
		args := MaskArgs([]any{"token", "mock-jwt-token-1-1", "count", 3})
		assert.Equal(t, "********", args[1])
		assert.Equal(t, 3, args[3])
	})

	t.Run("mask_string_urls", func(t *testing.T) {
		local := "posting to http://localhost:8787/api/auth/login"
		assert.Equal(t, local, MaskString(local))
		remote := MaskString("posting to https://dashboard.example.com/api/auth/login?session=abcdef")
		assert.Contains(t, remote, MaskChar)
		assert.NotContains(t, remote, "abcdef")
	})
}
