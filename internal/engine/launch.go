package engine

import (
	"fmt"
	"math"

	"flying_horse_backend/pkg/money"
)

// launchHitRate вероятность выигрыша на взлёте
const launchHitRate = 0.40

// launchTier ступень лестницы множителей взлёта
type launchTier struct {
	threshold  float64 // кумулятивная граница
	multiplier float64
}

// launchLadder 50% x1.5, 30% x2, 15% x3, 5% x5
var launchLadder = []launchTier{
	{threshold: 0.50, multiplier: 1.5},
	{threshold: 0.80, multiplier: 2.0},
	{threshold: 0.95, multiplier: 3.0},
}

// launchTopMultiplier множитель для остатка распределения
const launchTopMultiplier = 5.0

// LaunchResult результат взлёта
type LaunchResult struct {
	IsWin      bool
	WinAmount  float64
	Multiplier float64
}

// LaunchOutcome решает исход взлёта. Не зависит от состояния сессии,
// RTP и истории, только от ставки и двух независимых чисел из src.
func LaunchOutcome(bet float64, src RandomSource) (LaunchResult, error) {
	if !(bet > 0) || math.IsInf(bet, 0) {
		return LaunchResult{}, fmt.Errorf("%w: got %v", ErrInvalidBet, bet)
	}

	if !(src.Float64() < launchHitRate) {
		return LaunchResult{}, nil
	}

	multiplier := pickLaunchMultiplier(src.Float64())
	return LaunchResult{
		IsWin:      true,
		WinAmount:  money.RoundCents(bet * multiplier),
		Multiplier: multiplier,
	}, nil
}

// pickLaunchMultiplier первая граница, строго большая draw.
// Значение ровно на границе уходит в следующую ступень.
func pickLaunchMultiplier(draw float64) float64 {
	for _, tier := range launchLadder {
		if draw < tier.threshold {
			return tier.multiplier
		}
	}
	return launchTopMultiplier
}
