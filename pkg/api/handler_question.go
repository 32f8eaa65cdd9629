package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prepforge/quanta/pkg/models"
	"github.com/prepforge/quanta/pkg/services"
)

const maxStemSize = 32 * 1024

// createQuestionHandler handles POST /api/v1/questions.
// Accepts admin content only; the question enters the enrichment queue in
// "pending" and stays inactive until it passes the quality gate.
func (s *Server) createQuestionHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// 2. Validate required fields
	if req.Stem == "" {
		respondBadRequest(c, "stem is required")
		return
	}
	if req.AdminAnswer == "" {
		respondBadRequest(c, "admin_answer is required")
		return
	}
	if len(req.Stem) > maxStemSize {
		respondBadRequest(c, "stem exceeds maximum size")
		return
	}

	// 3. Call service
	question, err := s.questionService.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 4. Return response
	c.JSON(http.StatusAccepted, questionResponse(question))
}

// getQuestionHandler handles GET /api/v1/questions/:id.
func (s *Server) getQuestionHandler(c *gin.Context) {
	questionID := c.Param("id")
	if questionID == "" {
		respondBadRequest(c, "question id is required")
		return
	}

	question, err := s.questionService.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionResponse(question))
}

// listQuestionsHandler handles GET /api/v1/questions.
func (s *Server) listQuestionsHandler(c *gin.Context) {
	filters := services.QuestionFilters{Limit: 25}

	if v := c.Query("enrichment_status"); v != "" {
		switch v {
		case "pending", "enriching", "completed", "failed":
			filters.EnrichmentStatus = v
		default:
			respondBadRequest(c, "invalid enrichment_status")
			return
		}
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			respondBadRequest(c, "invalid active flag")
			return
		}
		filters.ActiveOnly = active
	}
	filters.Category = c.Query("category")
	filters.Subcategory = c.Query("subcategory")
	if v := c.Query("difficulty_band"); v != "" {
		if !models.Band(v).Valid() {
			respondBadRequest(c, "invalid difficulty_band")
			return
		}
		filters.DifficultyBand = v
	}
	if v := c.Query("min_pyq_frequency"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondBadRequest(c, "invalid min_pyq_frequency")
			return
		}
		filters.MinPYQFrequency = &f
	}
	if v := c.Query("max_pyq_frequency"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondBadRequest(c, "invalid max_pyq_frequency")
			return
		}
		filters.MaxPYQFrequency = &f
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			respondBadRequest(c, "limit must be an integer between 1 and 200")
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondBadRequest(c, "offset must be a non-negative integer")
			return
		}
		filters.Offset = n
	}

	questions, total, err := s.questionService.ListQuestions(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := &ListQuestionsResponse{
		Questions: make([]*QuestionResponse, 0, len(questions)),
		Total:     total,
		Limit:     filters.Limit,
		Offset:    filters.Offset,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, questionResponse(q))
	}
	c.JSON(http.StatusOK, resp)
}

// requeueQuestionHandler handles POST /api/v1/questions/:id/requeue.
// Puts a failed (or stuck) question back in the enrichment queue.
func (s *Server) requeueQuestionHandler(c *gin.Context) {
	questionID := c.Param("id")
	if questionID == "" {
		respondBadRequest(c, "question id is required")
		return
	}

	if err := s.questionService.RequeueEnrichment(c.Request.Context(), questionID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_id": questionID,
		"status":      "pending",
		"message":     "Question requeued for enrichment",
	})
}

// listAuditsHandler handles GET /api/v1/questions/:id/audits.
func (s *Server) listAuditsHandler(c *gin.Context) {
	questionID := c.Param("id")
	if questionID == "" {
		respondBadRequest(c, "question id is required")
		return
	}

	audits, err := s.auditService.ListAudits(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]*AuditResponse, 0, len(audits))
	for _, a := range audits {
		out = append(out, auditResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"question_id": questionID, "audits": out})
}

// queueStatsHandler handles GET /api/v1/questions/queue/stats.
func (s *Server) queueStatsHandler(c *gin.Context) {
	stats, err := s.questionService.EnrichmentQueueStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// createPYQHandler handles POST /api/v1/pyq.
// Past-year questions arrive pre-classified and feed frequency scoring only.
func (s *Server) createPYQHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req models.CreatePYQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// 2. Validate required fields
	if req.Stem == "" {
		respondBadRequest(c, "stem is required")
		return
	}
	if req.Category == "" || req.Subcategory == "" || req.TypeOfQuestion == "" {
		respondBadRequest(c, "category, subcategory and type_of_question are required")
		return
	}

	// 3. Call service
	pyq, err := s.pyqService.CreatePYQ(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 4. Return response
	c.JSON(http.StatusCreated, gin.H{"pyq_id": pyq.ID, "status": "created"})
}
