// Quanta learning-platform core: serves the planning and content HTTP
// API, runs the enrichment worker pool, and hosts the background
// maintenance loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/prepforge/quanta/pkg/api"
	"github.com/prepforge/quanta/pkg/config"
	"github.com/prepforge/quanta/pkg/database"
	"github.com/prepforge/quanta/pkg/enrich"
	"github.com/prepforge/quanta/pkg/llm"
	"github.com/prepforge/quanta/pkg/maintenance"
	"github.com/prepforge/quanta/pkg/mastery"
	"github.com/prepforge/quanta/pkg/planner"
	"github.com/prepforge/quanta/pkg/pool"
	"github.com/prepforge/quanta/pkg/queue"
	"github.com/prepforge/quanta/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildProvider constructs one chat-completion provider from its name.
func buildProvider(name, model string, maxTokens int) (llm.Provider, error) {
	switch name {
	case "openai":
		return llm.NewOpenAIProviderFromAPIKey(os.Getenv("OPENAI_API_KEY"), model)
	case "anthropic":
		return llm.NewAnthropicProviderFromAPIKey(os.Getenv("ANTHROPIC_API_KEY"), model, maxTokens)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", name)
	}
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting quanta",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	tax, err := cfg.LoadTaxonomy()
	if err != nil {
		slog.Error("Failed to load taxonomy", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	questionService := services.NewQuestionService(dbClient.Client)
	pyqService := services.NewPYQService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client, slog.Default())

	masteryParams := mastery.Params{
		Alpha:                cfg.Mastery.EwmaAlpha,
		DailyDecay:           cfg.Mastery.TimeDecayDaily,
		TargetSeconds:        cfg.Mastery.TargetSeconds(),
		FullExposureAttempts: cfg.Mastery.FullExposureAttempts,
	}
	masteryService := services.NewMasteryService(dbClient.Client, masteryParams)
	attemptService := services.NewAttemptService(dbClient.Client, masteryService)
	coverageService := services.NewCoverageService(dbClient.Client)

	plannerCfg := planner.Config{
		PackSize:                 cfg.Planner.PackSize,
		PhaseACutoff:             cfg.Planner.PhaseACutoff,
		PhaseBCutoff:             cfg.Planner.PhaseBCutoff,
		CategoryQuotas:           cfg.Planner.CategoryQuotas,
		MaxPerSubcategoryStrict:  cfg.Planner.MaxPerSubcategoryStrict,
		MaxPerSubcategoryRelaxed: cfg.Planner.MaxPerSubcategoryRelaxed,
		MaxPerTypeStrict:         cfg.Planner.MaxPerTypeStrict,
		MaxPerTypeRelaxed:        cfg.Planner.MaxPerTypeRelaxed,
		MinDistinctSubcategories: cfg.Planner.MinDistinctSubcategories,
		QuotaShiftMasteryGate:    cfg.Planner.QuotaShiftMasteryGate,
	}
	plnr := planner.New(plannerCfg, tax, slog.Default())

	poolCfg := pool.Config{
		KPerBand:       cfg.Pool.KPerBand,
		Ladder:         cfg.Pool.Ladder,
		RecentSessions: cfg.Pool.RecentSessions,
		CooldownDays:   cfg.Planner.CooldownDays(),
		ColdStartSize:  cfg.Pool.ColdStartSize,
		Preflight: pool.Preflight{
			MinEasy:   cfg.Pool.MinEasy,
			MinMedium: cfg.Pool.MinMedium,
			MinHard:   cfg.Pool.MinHard,
			MinPYQ10:  cfg.Pool.MinPYQ10,
			MinPYQ15:  cfg.Pool.MinPYQ15,
		},
	}
	sessionService := services.NewSessionService(
		dbClient.Client, plnr, questionService, masteryService, coverageService,
		poolCfg, cfg.Planner.PlanTimeout(), slog.Default())
	slog.Info("Services initialized")

	// 4. LLM gateway and enrichment pipeline
	primary, err := buildProvider(cfg.LLM.PrimaryProvider, cfg.LLM.PrimaryModel, cfg.LLM.MaxTokens)
	if err != nil {
		slog.Error("Failed to initialize primary LLM provider", "error", err)
		os.Exit(1)
	}
	fallback, err := buildProvider(cfg.LLM.FallbackProvider, cfg.LLM.FallbackModel, cfg.LLM.MaxTokens)
	if err != nil {
		slog.Error("Failed to initialize fallback LLM provider", "error", err)
		os.Exit(1)
	}

	gateway := llm.NewGateway(primary, fallback, llm.GatewayConfig{
		RecoveryInterval: cfg.LLM.RecoveryInterval(),
		Timeout:          cfg.LLM.Timeout(),
		RetryDelays:      cfg.LLM.RetryDelays(),
	}, llm.WithAuditSink(auditService))
	slog.Info("LLM gateway initialized",
		"primary", cfg.LLM.PrimaryProvider,
		"fallback", cfg.LLM.FallbackProvider)

	pipeline := enrich.New(gateway, tax, services.NewPYQRefSource(pyqService),
		enrich.WithMaxTokens(cfg.LLM.MaxTokens),
		enrich.WithTemperature(cfg.LLM.Temperature))

	// 5. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, questionService, podID); err != nil {
		// Non-fatal: orphan detection retries on its interval.
		slog.Error("Failed to cleanup startup orphans", "error", err)
	}

	// 6. Start enrichment worker pool (before HTTP server)
	executor := queue.NewExecutor(pipeline, questionService, slog.Default())
	workerPool := queue.NewWorkerPool(podID, questionService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Start background maintenance (mastery decay, audit retention)
	maintenanceService := maintenance.NewService(cfg.Maintenance, masteryService, auditService)
	maintenanceService.Start(ctx)

	// 8. Create HTTP server
	server := api.NewServer(api.Deps{
		DB:        dbClient,
		Sessions:  sessionService,
		Questions: questionService,
		PYQ:       pyqService,
		Attempts:  attemptService,
		Mastery:   masteryService,
		Audits:    auditService,
		Pool:      workerPool,
		Gateway:   gateway,
		Logger:    slog.Default(),
	})

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Quanta started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	maintenanceService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for in-flight enrichments to finish)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight enrichments will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
