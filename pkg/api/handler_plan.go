package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepforge/quanta/pkg/models"
)

// planNextHandler handles POST /api/v1/sessions/plan_next.
// Plans the student's next 12-question pack. Retrying the same transition
// (or resending the same Idempotency-Key) returns the already-planned
// session instead of minting a new one.
func (s *Server) planNextHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req models.PlanNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// 2. Validate required fields
	if req.StudentID == "" {
		respondBadRequest(c, "student_id is required")
		return
	}

	// 3. An explicit Idempotency-Key header overrides the derived plan key
	req.IdempotencyKey = c.GetHeader("Idempotency-Key")

	// 4. Call service
	resp, err := s.sessionService.PlanNext(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 5. Return response
	status := http.StatusCreated
	if resp.Status == "already_planned" {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}
