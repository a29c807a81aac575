package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

func TestWriteJSON(t *testing.T) {
	var errs models.FieldErrors
	errs.Add("merchant_name", "is required")

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "valid result",
			data:     models.ValidationResult{Valid: true, Scheme: models.SchemeSalem},
			status:   http.StatusOK,
			wantBody: `{"valid":true,"scheme":"salem","errors":{}}`,
		},
		{
			name:     "invalid result",
			data:     models.ValidationResult{Scheme: models.SchemePNS, Errors: errs},
			status:   http.StatusUnprocessableEntity,
			wantBody: `{"valid":false,"scheme":"pns","errors":{"merchant_name":["is required"]}}`,
		},
		{
			name:     "gateway response",
			data:     models.GatewayResponse{Success: true, Message: "ok", Test: true},
			status:   http.StatusOK,
			wantBody: `{"success":true,"message":"ok","test":true}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != len(tt.wantBody) {
				t.Errorf("expected %d bytes written, got %d", len(tt.wantBody), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/gateway/settle", nil)
	r = r.WithContext(WithTraceID(r.Context(), "trace-1"))

	WriteError(w, r, "unknown gateway action", http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var got ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected body %q: %v", w.Body.String(), err)
	}
	if got.Error != "unknown gateway action" || got.TraceID != "trace-1" {
		t.Errorf("unexpected response %+v", got)
	}
}

func TestWriteError_WithoutTraceID(t *testing.T) {
	for _, r := range []*http.Request{nil, httptest.NewRequest(http.MethodGet, "/", nil)} {
		w := httptest.NewRecorder()

		WriteError(w, r, "boom", http.StatusInternalServerError)

		if w.Body.String() != `{"error":"boom"}` {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	}
}
