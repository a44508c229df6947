// Package jobs фоновые задачи по расписанию (cron): чистка истёкших
// сессий вместе с их движками, периодический снимок RTP в лог.
package jobs

import (
	"context"
	"flying_horse_backend/internal/model"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const (
	cleanupSpec  = "*/10 * * * *"
	snapshotSpec = "0 * * * *"
)

// EngineReleaser реестр движков сессий
type EngineReleaser interface {
	Release(sessionID string)
	ForgetClosed(olderThan time.Duration) int
	Len() int
}

// SessionCleaner хранилище сессий
type SessionCleaner interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) ([]string, error)
}

// RTPSnapshotter трекер фактического RTP
type RTPSnapshotter interface {
	Snapshot() model.LiveRTP
}

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron      *cron.Cron
	engines   EngineReleaser
	sessions  SessionCleaner
	stats     RTPSnapshotter
	closedTTL time.Duration
	now       func() time.Time
}

// NewScheduler создаёт планировщик в UTC. closedTTL сколько помнить
// закрытые сессии, не меньше жизни access токена
func NewScheduler(engines EngineReleaser, sessions SessionCleaner, stats RTPSnapshotter, closedTTL time.Duration) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		engines:   engines,
		sessions:  sessions,
		stats:     stats,
		closedTTL: closedTTL,
		now:       time.Now,
	}
}

// Start регистрирует задачи и запускает cron.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(cleanupSpec, func() { s.Cleanup(ctx) }); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(snapshotSpec, s.LogSnapshot); err != nil {
		return err
	}

	s.cron.Start()
	log.Info("scheduler started")
	return nil
}

// Stop останавливает планировщик и ждёт текущие задачи.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}

// Cleanup удаляет истёкшие сессии и выгружает их движки.
// Движок живой сессии не трогается, сколько бы она ни простаивала.
func (s *Scheduler) Cleanup(ctx context.Context) {
	expired, err := s.sessions.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		log.WithError(err).Error("[CRON] delete expired sessions")
	}
	for _, id := range expired {
		s.engines.Release(id)
	}
	forgotten := s.engines.ForgetClosed(s.closedTTL)

	log.WithFields(log.Fields{
		"sessions_deleted": len(expired),
		"closed_forgotten": forgotten,
		"engines_live":     s.engines.Len(),
	}).Debug("[CRON] cleanup")
}

// LogSnapshot пишет в лог текущий RTP трекера
func (s *Scheduler) LogSnapshot() {
	snap := s.stats.Snapshot()

	entry := log.WithFields(log.Fields{
		"spins":       snap.TotalSpins,
		"total_rtp":   snap.CurrentRTP,
		"window_rtp":  snap.WindowRTP,
		"window_size": snap.WindowSize,
		"target_rtp":  snap.TargetRTP,
	})
	if snap.EmergencyMode {
		entry.Warn("[CRON] rtp snapshot, drift alert active")
		return
	}
	entry.Info("[CRON] rtp snapshot")
}
