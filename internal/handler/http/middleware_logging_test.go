package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger кладёт логгер в контекст запроса так же, как это делает
// withTraceID.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), buf.String())
	return entry
}

func TestWithLogging_AccessLine(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{"valid descriptor", http.MethodPost, "/api/descriptors/validate", http.StatusOK, `{"valid":true}`, "info"},
		{"scoped validation", http.MethodPost, "/api/descriptors/validate?fields=merchant_url", http.StatusOK, `{}`, "info"},
		{"invalid descriptor", http.MethodPost, "/api/descriptors/validate", http.StatusUnprocessableEntity, `{"valid":false}`, "warn"},
		{"unknown action", http.MethodPost, "/api/gateway/settle", http.StatusNotFound, `{"error":"unknown gateway action"}`, "warn"},
		{"gateway exception", http.MethodPost, "/api/gateway/purchase", http.StatusBadGateway, `{"error":"Bogus Gateway"}`, "error"},
		{"version", http.MethodGet, "/api/version/", http.StatusOK, "v1.0.0", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rec, requestWithLogger(tt.method, tt.target, buf))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())

			entry := decodeLogLine(t, buf)
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	buf := &bytes.Buffer{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/version/", buf))

	entry := decodeLogLine(t, buf)
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &bytes.Buffer{}))
	})
}

func TestWithLogging_WithoutLoggerInContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	assert.NotPanics(t, func() { withLogging(next).ServeHTTP(rec, req) })
	assert.Equal(t, "ok", rec.Body.String())
}

func TestWithLogging_ThroughRouter(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewHandler(newTestServices(t, false), logger.NewLogger("test", logger.WithOutput(buf)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/descriptors/validate",
		strings.NewReader(`{"merchant_id":"12345","merchant_name":"Mer"}`))
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var access map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["uri"] == "/api/descriptors/validate" {
			access = entry
		}
	}
	require.NotNil(t, access, "access line must be written")
	assert.Equal(t, "warn", access["level"])
	assert.NotEmpty(t, access["trace_id"])
	assert.Equal(t, rec.Header().Get("X-Trace-ID"), access["trace_id"])
}

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   zerolog.Level
	}{
		{http.StatusOK, zerolog.InfoLevel},
		{http.StatusNoContent, zerolog.InfoLevel},
		{http.StatusBadRequest, zerolog.WarnLevel},
		{http.StatusUnprocessableEntity, zerolog.WarnLevel},
		{http.StatusInternalServerError, zerolog.ErrorLevel},
		{http.StatusServiceUnavailable, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, levelForStatus(tt.status))
		})
	}
}
