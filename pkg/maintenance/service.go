// Package maintenance provides the background upkeep loops: daily mastery
// time decay and audit-trail retention.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/prepforge/quanta/pkg/config"
	"github.com/prepforge/quanta/pkg/services"
)

// Service periodically applies the mastery time decay and enforces the
// audit retention policy. All operations are idempotent and safe to run
// from multiple pods.
type Service struct {
	config         *config.MaintenanceConfig
	masteryService *services.MasteryService
	auditService   *services.AuditService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new maintenance service.
func NewService(
	cfg *config.MaintenanceConfig,
	masteryService *services.MasteryService,
	auditService *services.AuditService,
) *Service {
	return &Service{
		config:         cfg,
		masteryService: masteryService,
		auditService:   auditService,
	}
}

// Start launches the background maintenance loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Maintenance service started",
		"decay_interval", s.config.DecayInterval,
		"audit_retention_days", s.config.AuditRetentionDays,
		"cleanup_interval", s.config.CleanupInterval)
}

// Stop signals the maintenance loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Maintenance service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.decayMastery(ctx)
	s.purgeOldAudits(ctx)

	decayTicker := time.NewTicker(s.config.DecayInterval)
	defer decayTicker.Stop()
	cleanupTicker := time.NewTicker(s.config.CleanupInterval)
	defer cleanupTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-decayTicker.C:
			s.decayMastery(ctx)
		case <-cleanupTicker.C:
			s.purgeOldAudits(ctx)
		}
	}
}

func (s *Service) decayMastery(_ context.Context) {
	count, err := s.masteryService.DecayInactive(context.Background(), time.Now())
	if err != nil {
		slog.Error("Maintenance: mastery decay failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Maintenance: decayed inactive mastery rows", "count", count)
	}
}

func (s *Service) purgeOldAudits(_ context.Context) {
	count, err := s.auditService.PurgeOldAudits(context.Background(), s.config.AuditRetentionDays)
	if err != nil {
		slog.Error("Maintenance: audit purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Maintenance: purged old audit rows", "count", count)
	}
}
