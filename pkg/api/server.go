package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/prepforge/quanta/pkg/database"
	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/queue"
	"github.com/prepforge/quanta/pkg/services"
)

// Server wires HTTP handlers to the service layer.
type Server struct {
	dbClient        *database.Client
	sessionService  *services.SessionService
	questionService *services.QuestionService
	pyqService      *services.PYQService
	attemptService  *services.AttemptService
	masteryService  *services.MasteryService
	auditService    *services.AuditService
	workerPool      *queue.WorkerPool
	llmGateway      *llm.Gateway
	logger          *slog.Logger
}

// Deps carries everything the server needs. Optional fields (workerPool,
// llmGateway) degrade the health report when absent instead of failing.
type Deps struct {
	DB        *database.Client
	Sessions  *services.SessionService
	Questions *services.QuestionService
	PYQ       *services.PYQService
	Attempts  *services.AttemptService
	Mastery   *services.MasteryService
	Audits    *services.AuditService
	Pool      *queue.WorkerPool
	Gateway   *llm.Gateway
	Logger    *slog.Logger
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		dbClient:        deps.DB,
		sessionService:  deps.Sessions,
		questionService: deps.Questions,
		pyqService:      deps.PYQ,
		attemptService:  deps.Attempts,
		masteryService:  deps.Mastery,
		auditService:    deps.Audits,
		workerPool:      deps.Pool,
		llmGateway:      deps.Gateway,
		logger:          logger,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)

		v1.POST("/sessions/plan_next", s.planNextHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/pack", s.getPackHandler)
		v1.POST("/sessions/:id/served", s.markServedHandler)
		v1.POST("/sessions/:id/complete", s.completeSessionHandler)

		v1.POST("/attempts", s.recordAttemptHandler)
		v1.GET("/students/:id/attempts", s.listAttemptsHandler)
		v1.GET("/students/:id/mastery", s.getMasteryHandler)

		v1.POST("/questions", s.createQuestionHandler)
		v1.GET("/questions", s.listQuestionsHandler)
		v1.GET("/questions/:id", s.getQuestionHandler)
		v1.POST("/questions/:id/requeue", s.requeueQuestionHandler)
		v1.GET("/questions/:id/audits", s.listAuditsHandler)
		v1.GET("/questions/queue/stats", s.queueStatsHandler)

		v1.POST("/pyq", s.createPYQHandler)
	}

	return r
}
