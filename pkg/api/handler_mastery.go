package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getMasteryHandler handles GET /api/v1/students/:id/mastery.
// Returns per-(subcategory, type) mastery snapshots plus subcategory-level
// rollups, each with its reporting label.
func (s *Server) getMasteryHandler(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		respondBadRequest(c, "student id is required")
		return
	}

	snapshots, err := s.masteryService.Snapshots(c.Request.Context(), studentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := &MasteryResponse{
		StudentID: studentID,
		Masteries: make([]MasterySnapshotEntry, 0, len(snapshots)),
	}
	for _, snap := range snapshots {
		resp.Masteries = append(resp.Masteries, MasterySnapshotEntry{
			MasterySnapshot: snap,
			Label:           snap.Label(),
		})
	}
	c.JSON(http.StatusOK, resp)
}
