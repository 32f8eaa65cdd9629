package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prepforge/quanta/pkg/models"
)

// recordAttemptHandler handles POST /api/v1/attempts.
// Persists the attempt and folds it into the student's mastery state.
func (s *Server) recordAttemptHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req models.RecordAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// 2. Call service (field validation lives in the service layer)
	attempt, err := s.attemptService.RecordAttempt(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 3. Return response
	c.JSON(http.StatusCreated, attemptResponse(attempt))
}

// listAttemptsHandler handles GET /api/v1/students/:id/attempts.
func (s *Server) listAttemptsHandler(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		respondBadRequest(c, "student id is required")
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			respondBadRequest(c, "limit must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	attempts, err := s.attemptService.ListAttempts(c.Request.Context(), studentID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]*AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, attemptResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"student_id": studentID, "attempts": out})
}
