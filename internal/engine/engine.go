// Package engine серверный движок исходов: взлёт, выстрелы и малые выигрыши.
// Движок не знает о раундах, балансах и хранилище. Он только классифицирует
// исход, суммы джекпота считает вызывающий сервис.
package engine

import (
	"fmt"
	"sync"
)

// Engine движок одной игровой сессии.
// Фаза модулятора принадлежит только ему и только сдвигается вперёд.
type Engine struct {
	mu    sync.Mutex
	src   RandomSource
	mod   Modulator
	rtp   *TargetRTP
	calls uint64
}

// Option настройка движка
type Option func(*Engine)

// WithRandomSource подменяет источник случайных чисел
func WithRandomSource(src RandomSource) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithModulator подменяет модулятор удачи
func WithModulator(m Modulator) Option {
	return func(e *Engine) {
		e.mod = m
	}
}

// WithSharedRTP движок читает RTP из общей настройки
func WithSharedRTP(rtp *TargetRTP) Option {
	return func(e *Engine) {
		e.rtp = rtp
	}
}

// New создаёт движок. Начальная фаза модулятора берётся из источника движка.
func New(targetRTP float64, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewRandomSource()
	}
	if e.mod == nil {
		e.mod = NewCycleModulator(e.src)
	}
	if e.rtp == nil {
		e.rtp = NewTargetRTP(targetRTP)
	}
	return e
}

// Launch исход взлёта. Состояние сессии не трогает
func (e *Engine) Launch(bet float64) (LaunchResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return LaunchOutcome(bet, e.src)
}

// Shoot классифицирует выстрел. Каждый корректный вызов сдвигает фазу
// модулятора, даже если вызывающий потом отбросит результат.
func (e *Engine) Shoot(multiplier float64, pinataHits int) (Outcome, error) {
	if err := validateShoot(multiplier, pinataHits); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls++
	luck := e.mod.Advance()
	odds := ComputeShootOdds(e.rtp.Load(), multiplier, pinataHits, luck)

	return Classify(odds, e.src), nil
}

// SmallWinAmount сумма малого выигрыша для SMALL_WIN
func (e *Engine) SmallWinAmount(bet float64) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return SmallWinAmount(bet, e.src)
}

// SetTargetRTP действует сразу для всех последующих вызовов.
// Диапазон [0.5, 1.0] проверяет админка, здесь только (0, 1].
func (e *Engine) SetTargetRTP(rtp float64) error {
	if !validRTP(rtp) {
		return fmt.Errorf("%w: got %v", ErrInvalidRTP, rtp)
	}
	e.rtp.Store(rtp)
	return nil
}

// TargetRTP действующий RTP
func (e *Engine) TargetRTP() float64 {
	return e.rtp.Load()
}

// CallCount число выстрелов (диагностика)
func (e *Engine) CallCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}
