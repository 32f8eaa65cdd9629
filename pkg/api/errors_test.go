package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/prepforge/quanta/pkg/services"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	respondServiceError(c, err)
	return rec
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("student_id", "is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation error maps to 400",
			err:        errors.Join(errors.New("outer"), services.NewValidationError("pack", "bad input")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found maps to 404",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "already exists maps to 409",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid transition maps to 409",
			err:        services.ErrInvalidTransition,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unexpected error maps to 500",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := respondWith(tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestRespondServiceError_HidesInternalDetails(t *testing.T) {
	rec := respondWith(errors.New("pq: connection refused at 10.0.0.5"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
