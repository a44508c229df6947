package engine

import (
	"math"
	"testing"
)

// scriptedSource отдаёт заранее заданные числа по порядку
type scriptedSource struct {
	t     *testing.T
	draws []float64
	next  int
}

func script(t *testing.T, draws ...float64) *scriptedSource {
	return &scriptedSource{t: t, draws: draws}
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.draws) {
		s.t.Fatalf("scripted source exhausted after %d draws", len(s.draws))
	}
	v := s.draws[s.next]
	s.next++
	return v
}

// fixedLuck модулятор с закреплённой удачей
type fixedLuck float64

func (f fixedLuck) Advance() float64 { return float64(f) }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
