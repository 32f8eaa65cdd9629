package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newQuestionTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/questions", s.createQuestionHandler)
	r.GET("/api/v1/questions", s.listQuestionsHandler)
	r.POST("/api/v1/pyq", s.createPYQHandler)
	return r
}

func TestCreateQuestionHandler_Validation(t *testing.T) {
	r := newQuestionTestRouter(&Server{})

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "missing stem",
			body:   `{"admin_answer": "42"}`,
			errMsg: "stem is required",
		},
		{
			name:   "missing admin_answer",
			body:   `{"stem": "What is 6 x 7?"}`,
			errMsg: "admin_answer is required",
		},
		{
			name:   "oversized stem",
			body:   `{"stem": "` + strings.Repeat("x", maxStemSize+1) + `", "admin_answer": "42"}`,
			errMsg: "stem exceeds maximum size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/questions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}

func TestListQuestionsHandler_Validation(t *testing.T) {
	r := newQuestionTestRouter(&Server{})

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "invalid enrichment_status",
			query:  "enrichment_status=bogus",
			errMsg: "invalid enrichment_status",
		},
		{
			name:   "invalid active flag",
			query:  "active=maybe",
			errMsg: "invalid active flag",
		},
		{
			name:   "limit too large",
			query:  "limit=5000",
			errMsg: "limit must be an integer between 1 and 200",
		},
		{
			name:   "negative offset",
			query:  "offset=-1",
			errMsg: "offset must be a non-negative integer",
		},
		{
			name:   "invalid difficulty_band",
			query:  "difficulty_band=Brutal",
			errMsg: "invalid difficulty_band",
		},
		{
			name:   "invalid min_pyq_frequency",
			query:  "min_pyq_frequency=often",
			errMsg: "invalid min_pyq_frequency",
		},
		{
			name:   "invalid max_pyq_frequency",
			query:  "max_pyq_frequency=rarely",
			errMsg: "invalid max_pyq_frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/questions?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}

func TestCreatePYQHandler_Validation(t *testing.T) {
	r := newQuestionTestRouter(&Server{})

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "missing stem",
			body:   `{"category": "Arithmetic", "subcategory": "Percentages", "type_of_question": "Successive Change"}`,
			errMsg: "stem is required",
		},
		{
			name:   "missing classification",
			body:   `{"stem": "A price rises 10% then falls 10%."}`,
			errMsg: "category, subcategory and type_of_question are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/pyq", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errMsg)
		})
	}
}
