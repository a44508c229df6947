package jobs

import (
	"context"
	"errors"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/internal/repository/stats_repo"
	"testing"
	"time"
)

type sessionsStub struct {
	calledAt time.Time
	expired  []string
	err      error
}

func (s *sessionsStub) DeleteExpiredSessions(_ context.Context, now time.Time) ([]string, error) {
	s.calledAt = now
	return s.expired, s.err
}

func newSession(t *testing.T, r *engine.Registry, id string) *engine.Engine {
	t.Helper()
	e, err := r.Session(id)
	if err != nil {
		t.Fatalf("session %q: %v", id, err)
	}
	return e
}

func TestCleanup(t *testing.T) {
	registry := engine.NewRegistry(0.96)
	newSession(t, registry, "a")
	newSession(t, registry, "b")

	sessions := &sessionsStub{expired: []string{"a"}}
	s := NewScheduler(registry, sessions, stats_repo.NewStatsRepository(0.96), time.Hour)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.Cleanup(context.Background())

	if registry.Len() != 1 {
		t.Errorf("live engines = %d, want 1", registry.Len())
	}
	if _, err := registry.Session("a"); !errors.Is(err, engine.ErrSessionClosed) {
		t.Errorf("expired session got an engine back: %v", err)
	}
	if !sessions.calledAt.Equal(fixed) {
		t.Errorf("sessions cleaned at %v, want %v", sessions.calledAt, fixed)
	}
}

func TestCleanup_IdleSessionKeepsPhase(t *testing.T) {
	registry := engine.NewRegistry(0.96)
	e := newSession(t, registry, "a")
	for i := 0; i < 3; i++ {
		if _, err := e.Shoot(2, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// сессия давно не играла, но refresh токен ещё жив
	s := NewScheduler(registry, &sessionsStub{}, stats_repo.NewStatsRepository(0.96), 0)
	s.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	s.Cleanup(context.Background())

	got := newSession(t, registry, "a")
	if got != e || got.CallCount() != 3 {
		t.Errorf("idle session engine was reset, calls = %d", got.CallCount())
	}
}

func TestCleanup_RepositoryError(t *testing.T) {
	registry := engine.NewRegistry(0.96)
	newSession(t, registry, "a")

	s := NewScheduler(registry, &sessionsStub{err: errors.New("db down")}, stats_repo.NewStatsRepository(0.96), time.Hour)
	s.Cleanup(context.Background())

	if registry.Len() != 1 {
		t.Errorf("live engines = %d, want 1", registry.Len())
	}
}

type snapshotStub struct {
	calls int
}

func (s *snapshotStub) Snapshot() model.LiveRTP {
	s.calls++
	return model.LiveRTP{TotalSpins: 10, EmergencyMode: s.calls > 1}
}

func TestLogSnapshot(t *testing.T) {
	stats := &snapshotStub{}
	s := NewScheduler(engine.NewRegistry(0.96), &sessionsStub{}, stats, time.Hour)

	s.LogSnapshot()
	s.LogSnapshot()
	if stats.calls != 2 {
		t.Errorf("snapshot calls = %d, want 2", stats.calls)
	}
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(engine.NewRegistry(0.96), &sessionsStub{}, &snapshotStub{}, time.Hour)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := len(s.cron.Entries()); got != 2 {
		t.Errorf("entries = %d, want 2", got)
	}
	s.Stop()
}
