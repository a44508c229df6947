package engine

import "math"

const (
	// cycleStep шаг фазы за один выстрел, рад
	cycleStep = 0.2
	// luckAmplitude амплитуда колебания фактора удачи
	luckAmplitude = 0.2
)

// Modulator выдаёт фактор удачи для очередного выстрела
type Modulator interface {
	Advance() float64
}

// CycleModulator медленный синусоидальный осциллятор.
// Случайна только начальная фаза, дальше всё детерминировано.
// Среднее значение за полный период 2π равно 1.0, поэтому на
// долгосрочный RTP он не влияет, меняется только локальная дисперсия.
type CycleModulator struct {
	phase float64
}

// NewCycleModulator фаза равномерно в [0, 2π)
func NewCycleModulator(src RandomSource) *CycleModulator {
	return NewCycleModulatorAt(src.Float64() * 2 * math.Pi)
}

// NewCycleModulatorAt модулятор с заданной начальной фазой
func NewCycleModulatorAt(phase float64) *CycleModulator {
	return &CycleModulator{phase: phase}
}

// Advance сдвигает фазу на cycleStep и возвращает 1 + sin(phase)*0.2.
// Результат всегда в [0.8, 1.2]. Обёртка по 2π не нужна, синус периодичен.
func (m *CycleModulator) Advance() float64 {
	m.phase += cycleStep
	return 1.0 + math.Sin(m.phase)*luckAmplitude
}

// Phase текущая фаза
func (m *CycleModulator) Phase() float64 {
	return m.phase
}
