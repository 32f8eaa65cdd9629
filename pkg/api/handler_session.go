package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepforge/quanta/pkg/models"
)

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respondBadRequest(c, "session id is required")
		return
	}

	session, err := s.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session))
}

// getPackHandler handles GET /api/v1/sessions/:id/pack.
// Returns the planned pack in presentation order.
func (s *Server) getPackHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respondBadRequest(c, "session id is required")
		return
	}

	pack, err := s.sessionService.GetPack(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pack)
}

// markServedHandler handles POST /api/v1/sessions/:id/served.
// Transitions a planned session to served; retries are no-ops.
func (s *Server) markServedHandler(c *gin.Context) {
	req, ok := bindStatusRequest(c)
	if !ok {
		return
	}

	session, err := s.sessionService.MarkServed(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session))
}

// completeSessionHandler handles POST /api/v1/sessions/:id/complete.
func (s *Server) completeSessionHandler(c *gin.Context) {
	req, ok := bindStatusRequest(c)
	if !ok {
		return
	}

	session, err := s.sessionService.Complete(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session))
}

// bindStatusRequest binds and validates a session lifecycle request. The
// session id comes from the path, the student id from the body.
func bindStatusRequest(c *gin.Context) (models.SessionStatusRequest, bool) {
	var req models.SessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return req, false
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		respondBadRequest(c, "session id is required")
		return req, false
	}
	if req.StudentID == "" {
		respondBadRequest(c, "student_id is required")
		return req, false
	}
	return req, true
}
