package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{"ok", []int{http.StatusOK}, http.StatusOK},
		{"unprocessable", []int{http.StatusUnprocessableEntity}, http.StatusUnprocessableEntity},
		{"second call ignored", []int{http.StatusBadGateway, http.StatusOK}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, s := range tt.statuses {
				w.WriteHeader(s)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte(`{"valid":`))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	_, _ = w.Write([]byte(`true}`))

	assert.Equal(t, http.StatusOK, w.Status(), "Write implies 200")
	assert.Equal(t, 14, w.size)
	assert.Equal(t, `{"valid":true}`, rr.Body.String())
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Zero(t, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
