package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bankmesh/bank-services/internal/api"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *application {
	cfg := testConfig("cards")
	return &application{
		config: cfg,
		logger: testLogger(),
		serviceRoutes: func(r chi.Router) {
			r.Get("/fetch", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})
			r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
				panic("handler failure")
			})
		},
		infoHandler: api.NewInfoHandler(cfg.Service.BuildVersion, cfg.Contact),
	}
}

func TestSetupRouter(t *testing.T) {
	router := newTestApp().setupRouter()

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedBody   string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, "OK"},
		{"service routes under /api", http.MethodGet, "/api/fetch", http.StatusTeapot, ""},
		{"build info", http.MethodGet, "/api/build-info", http.StatusOK, "\"1.0\"\n"},
		{"recoverer", http.MethodGet, "/api/panic", http.StatusInternalServerError, ""},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}

func TestSetupRouter_ErrorEnvelope(t *testing.T) {
	router := newTestApp().setupRouter()

	tests := []struct {
		name            string
		method          string
		target          string
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			"unknown route", http.MethodGet, "/api/unknown",
			http.StatusNotFound, "NOT_FOUND", "No endpoint GET /api/unknown",
		},
		{
			"unknown root route", http.MethodGet, "/metrics",
			http.StatusNotFound, "NOT_FOUND", "No endpoint GET /metrics",
		},
		{
			"wrong method", http.MethodDelete, "/api/fetch",
			http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Request method 'DELETE' is not supported",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedCode, body.ErrorCode)
			assert.Equal(t, tc.expectedMessage, body.ErrorMessage)
			assert.Equal(t, "uri="+tc.target, body.APIPath)
		})
	}
}

func TestSetupRouter_TraceHeader(t *testing.T) {
	router := newTestApp().setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, w.Header().Get("X-Trace-ID"), 32)
}
