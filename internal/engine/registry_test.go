package engine

import (
	"errors"
	"testing"
	"time"
)

func mustSession(t *testing.T, r *Registry, id string) *Engine {
	t.Helper()
	e, err := r.Session(id)
	if err != nil {
		t.Fatalf("session %q: %v", id, err)
	}
	return e
}

func TestRegistry_OneEnginePerSession(t *testing.T) {
	r := NewRegistry(0.96)

	a := mustSession(t, r, "a")
	if mustSession(t, r, "a") != a {
		t.Error("same session must get the same engine")
	}
	if mustSession(t, r, "b") == a {
		t.Error("sessions must not share engines")
	}
	if r.Len() != 2 {
		t.Errorf("len = %d, want 2", r.Len())
	}

	r.Release("a")
	if r.Len() != 1 {
		t.Errorf("len after release = %d, want 1", r.Len())
	}
}

func TestRegistry_ReleasedSessionStaysClosed(t *testing.T) {
	r := NewRegistry(0.96)
	mustSession(t, r, "a")
	r.Release("a")

	e, err := r.Session("a")
	if !errors.Is(err, ErrSessionClosed) || e != nil {
		t.Fatalf("expected ErrSessionClosed, got %v / %v", e, err)
	}
	if r.Len() != 0 {
		t.Errorf("closed session recreated an engine, len = %d", r.Len())
	}
}

func TestRegistry_ReleaseUnknownSession(t *testing.T) {
	r := NewRegistry(0.96)
	r.Release("never-played")

	if _, err := r.Session("never-played"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
}

func TestRegistry_ForgetClosed(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(0.96)
	r.now = func() time.Time { return now }

	r.Release("old")
	now = now.Add(20 * time.Minute)
	r.Release("fresh")
	now = now.Add(5 * time.Minute)

	if removed := r.ForgetClosed(15 * time.Minute); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if r.Closed() != 1 {
		t.Errorf("closed = %d, want 1", r.Closed())
	}
	if _, err := r.Session("fresh"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("fresh tombstone lost: %v", err)
	}
}

func TestRegistry_LiveSessionKeepsPhase(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(0.96)
	r.now = func() time.Time { return now }

	e := mustSession(t, r, "a")
	if _, err := e.Shoot(2, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now = now.Add(3 * time.Hour)
	r.ForgetClosed(time.Minute)

	if got := mustSession(t, r, "a"); got != e || got.CallCount() != 1 {
		t.Errorf("idle session lost its engine state")
	}
}

func TestRegistry_SetTargetRTPReachesAllSessions(t *testing.T) {
	r := NewRegistry(0.96)
	a, b := mustSession(t, r, "a"), mustSession(t, r, "b")

	if err := r.SetTargetRTP(0.9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TargetRTP() != 0.9 || b.TargetRTP() != 0.9 {
		t.Errorf("existing engines see %v / %v", a.TargetRTP(), b.TargetRTP())
	}
	if c := mustSession(t, r, "c"); c.TargetRTP() != 0.9 {
		t.Errorf("new engine sees %v", c.TargetRTP())
	}
	if err := r.SetTargetRTP(1.5); !errors.Is(err, ErrInvalidRTP) {
		t.Errorf("expected ErrInvalidRTP, got %v", err)
	}
	if r.TargetRTP() != 0.9 {
		t.Errorf("rejected update changed rtp to %v", r.TargetRTP())
	}
}

func TestRegistry_EngineOptions(t *testing.T) {
	r := NewRegistry(0.96, WithEngineOptions(func() []Option {
		return []Option{WithRandomSource(NewSeededSource(7)), WithModulator(fixedLuck(1.0))}
	}))

	e := mustSession(t, r, "a")
	// Шанс джекпота при x2 и luck 1: (0.96 - 0.225) / 2 = 0.3675
	odds := ComputeShootOdds(e.TargetRTP(), 2, 0, 1.0)
	if !almostEqual(odds.Jackpot, 0.3675) {
		t.Fatalf("jackpot = %v", odds.Jackpot)
	}
	if _, err := e.Shoot(2, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", e.CallCount())
	}
}
