package engine

import (
	"fmt"
	"sync"
	"time"
)

// Registry держит по одному движку на игровую сессию.
// Движки сессий между собой не делят ничего, кроме настройки RTP.
// Движок живёт, пока жива сессия: удаляется только через Release.
type Registry struct {
	mu         sync.Mutex
	rtp        *TargetRTP
	sessions   map[string]*Engine
	closed     map[string]time.Time
	engineOpts func() []Option
	now        func() time.Time
}

// RegistryOption настройка реестра
type RegistryOption func(*Registry)

// WithEngineOptions опции для каждого нового движка сессии.
// Общий RTP реестра добавляется поверх них.
func WithEngineOptions(f func() []Option) RegistryOption {
	return func(r *Registry) {
		r.engineOpts = f
	}
}

func defaultEngineOptions() []Option {
	return []Option{WithRandomSource(NewRandomSource())}
}

// NewRegistry создаёт пустой реестр
func NewRegistry(targetRTP float64, opts ...RegistryOption) *Registry {
	r := &Registry{
		rtp:        NewTargetRTP(targetRTP),
		sessions:   make(map[string]*Engine),
		closed:     make(map[string]time.Time),
		engineOpts: defaultEngineOptions,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session движок сессии, создаётся при первом обращении.
// Для закрытой сессии возвращает ErrSessionClosed.
func (r *Registry) Session(sessionID string) (*Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.closed[sessionID]; ok {
		return nil, ErrSessionClosed
	}
	e, ok := r.sessions[sessionID]
	if !ok {
		e = New(0, append(r.engineOpts(), WithSharedRTP(r.rtp))...)
		r.sessions[sessionID] = e
	}
	return e, nil
}

// Release удаляет движок и помечает сессию закрытой
func (r *Registry) Release(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	r.closed[sessionID] = r.now()
}

// ForgetClosed забывает сессии, закрытые раньше olderThan назад.
// olderThan должен быть не меньше жизни access токена, иначе
// ещё валидный токен снова получит движок.
func (r *Registry) ForgetClosed(olderThan time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-olderThan)
	removed := 0
	for id, at := range r.closed {
		if at.Before(deadline) {
			delete(r.closed, id)
			removed++
		}
	}
	return removed
}

// Len число живых сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Closed число помеченных закрытыми сессий
func (r *Registry) Closed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.closed)
}

// SetTargetRTP новый RTP для всех сессий сразу
func (r *Registry) SetTargetRTP(rtp float64) error {
	if !validRTP(rtp) {
		return fmt.Errorf("%w: got %v", ErrInvalidRTP, rtp)
	}
	r.rtp.Store(rtp)
	return nil
}

// TargetRTP действующий RTP реестра
func (r *Registry) TargetRTP() float64 {
	return r.rtp.Load()
}
