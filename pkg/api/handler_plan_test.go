package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Validation-only tests: requests that fail before reaching the service
// layer, so a zero-value Server is enough. Happy paths are covered by the
// integration and e2e suites, which have a real database behind them.

func newTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/sessions/plan_next", s.planNextHandler)
	r.POST("/api/v1/sessions/:id/served", s.markServedHandler)
	r.POST("/api/v1/sessions/:id/complete", s.completeSessionHandler)
	return r
}

func TestPlanNextHandler_Validation(t *testing.T) {
	r := newTestRouter(&Server{})

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "malformed JSON",
			body:   "{not json",
			errMsg: "invalid character",
		},
		{
			name:   "missing student_id",
			body:   `{"last_session_id": "sess-1"}`,
			errMsg: "student_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/plan_next", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}

func TestSessionStatusHandlers_Validation(t *testing.T) {
	r := newTestRouter(&Server{})

	for _, path := range []string{
		"/api/v1/sessions/sess-1/served",
		"/api/v1/sessions/sess-1/complete",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "student_id is required")
		})
	}
}
