package engine

import (
	"math"
	"testing"
)

func TestCycleModulator_Deterministic(t *testing.T) {
	m := NewCycleModulatorAt(0)
	if got, want := m.Advance(), 1+math.Sin(0.2)*0.2; !almostEqual(got, want) {
		t.Errorf("first advance = %v, want %v", got, want)
	}
	if got, want := m.Advance(), 1+math.Sin(0.4)*0.2; !almostEqual(got, want) {
		t.Errorf("second advance = %v, want %v", got, want)
	}
	if !almostEqual(m.Phase(), 0.4) {
		t.Errorf("phase = %v, want 0.4", m.Phase())
	}
}

func TestCycleModulator_Bounded(t *testing.T) {
	m := NewCycleModulator(NewSeededSource(7))
	for i := 0; i < 10_000; i++ {
		luck := m.Advance()
		if luck < 0.8 || luck > 1.2 {
			t.Fatalf("luck %v out of [0.8, 1.2] at call %d", luck, i)
		}
	}
}

func TestCycleModulator_InitialPhaseInRange(t *testing.T) {
	src := NewSeededSource(3)
	for i := 0; i < 1000; i++ {
		m := NewCycleModulator(src)
		if m.Phase() < 0 || m.Phase() >= 2*math.Pi {
			t.Fatalf("initial phase %v out of [0, 2π)", m.Phase())
		}
	}
}

func TestCycleModulator_FullCycleAveragesToOne(t *testing.T) {
	for _, phase := range []float64{0, 1, 2.5, 4, 6} {
		m := NewCycleModulatorAt(phase)

		// 31 вызов почти полный период (6.2 из 2π)
		sum := 0.0
		for i := 0; i < 31; i++ {
			sum += m.Advance()
		}
		if avg := sum / 31; math.Abs(avg-1) > 0.005 {
			t.Errorf("phase %v: 31-call average %v", phase, avg)
		}

		// 157 вызовов почти ровно пять периодов
		sum = 0
		for i := 0; i < 157; i++ {
			sum += m.Advance()
		}
		if avg := sum / 157; math.Abs(avg-1) > 0.0005 {
			t.Errorf("phase %v: 157-call average %v", phase, avg)
		}
	}
}
