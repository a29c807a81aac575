package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry), buf.String())
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("soft-descriptor-server", WithOutput(&buf))

	l.Info().Str("scheme", "salem").Msg("validated")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "soft-descriptor-server", entry["role"])
	assert.Equal(t, "salem", entry["scheme"])
	assert.Equal(t, "validated", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithOutput_NilKeepsDefault(t *testing.T) {
	o := options{output: os.Stdout}
	WithOutput(nil)(&o)
	assert.Equal(t, os.Stdout, o.output)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", WithOutput(&buf))

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "0192b1f4")
	})
	child.Info().Msg("child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "0192b1f4", entry["trace_id"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "trace_id", "child fields must not leak into the parent")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])

	req := httptest.NewRequest(http.MethodPost, "/api/descriptors/validate", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "from request", lastEntry(t, &buf)["message"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestNewLogger_WithOutputAndLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := NewLogger("opts", WithOutput(&buf), WithLevel(zerolog.WarnLevel))

	l.Info().Msg("filtered")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Contains(t, entry["func"], "TestNewLogger_WithOutputAndLevel")
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", path)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"client"`)
	assert.Contains(t, string(data), "to file")
}

func TestNewClientLogger_UnwritablePathDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "client.log")

	l := NewClientLogger("client", path)
	require.NotNil(t, l)
	l.Info().Msg("dropped")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
