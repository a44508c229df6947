package engine

import (
	"math"
	"sync/atomic"
)

// TargetRTP атомарно хранимый целевой RTP.
// Один экземпляр может разделяться всеми движками реестра, тогда
// админское изменение видно каждой сессии на следующем вызове.
type TargetRTP struct {
	bits atomic.Uint64
}

// NewTargetRTP создаёт настройку с начальным значением
func NewTargetRTP(v float64) *TargetRTP {
	t := &TargetRTP{}
	t.bits.Store(math.Float64bits(v))
	return t
}

// Load текущее значение
func (t *TargetRTP) Load() float64 {
	return math.Float64frombits(t.bits.Load())
}

// Store устанавливает новое значение. Проверка диапазона на вызывающем
func (t *TargetRTP) Store(v float64) {
	t.bits.Store(math.Float64bits(v))
}

func validRTP(v float64) bool {
	return v > 0 && v <= 1
}
