package engine

import (
	"fmt"
	"math"
)

// Outcome исход выстрела
type Outcome string

const (
	OutcomeJackpot    Outcome = "JACKPOT"
	OutcomeSmallWin   Outcome = "SMALL_WIN"
	OutcomeBadExplode Outcome = "BAD_EXPLODE"
	OutcomeMiss       Outcome = "MISS"
)

const (
	// smallWinBase базовый шанс малого выигрыша до умножения на удачу
	smallWinBase = 0.45
	// smallWinRTPShare доля ставки, которой модель оценивает малый выигрыш.
	// Фактическое среднее SmallWinAmount около 0.6 ставки (0.1*1.5 + 0.9*0.5),
	// модель настроена приблизительно. Перенастройка только отдельным изменением.
	smallWinRTPShare = 0.5

	jackpotMin = 0.000001
	jackpotMax = 0.5

	// highMultiplier с этого множителя базовый риск взрыва удваивается
	highMultiplier   = 50.0
	baseRiskLow      = 0.02
	baseRiskHigh     = 0.04
	riskPerPinataHit = 0.015
)

// ShootOdds вероятности одного выстрела при заданной удаче
type ShootOdds struct {
	Luck     float64
	SmallWin float64
	Jackpot  float64
	Explode  float64
}

// ComputeShootOdds чистая функция шагов 2-6 модели выстрела.
// Деление на множитель держит jackpot*multiplier около targetRTP:
// чем больше уже накоплено, тем реже джекпот.
func ComputeShootOdds(targetRTP, multiplier float64, pinataHits int, luck float64) ShootOdds {
	smallWin := smallWinBase * luck
	jackpotRTP := targetRTP - smallWin*smallWinRTPShare

	jackpot := math.Max(jackpotMin, math.Min(jackpotMax, jackpotRTP/multiplier))
	jackpot *= luck

	baseRisk := baseRiskLow
	if multiplier >= highMultiplier {
		baseRisk = baseRiskHigh
	}

	return ShootOdds{
		Luck:     luck,
		SmallWin: smallWin,
		Jackpot:  jackpot,
		Explode:  baseRisk + float64(pinataHits)*riskPerPinataHit,
	}
}

// ExplodeThreshold порог взрыва для второго броска: в удачной фазе
// риск подавлен, в неудачной усилен
func (o ShootOdds) ExplodeThreshold() float64 {
	return o.Explode / o.Luck
}

// Classify шаги 7-10. Взрыв и малый выигрыш проверяются по одному и тому же
// subRoll: малый выигрыш это subRoll в [порог взрыва, SmallWin).
// Не разносить на независимые броски, иначе изменится распределение выплат.
func Classify(odds ShootOdds, src RandomSource) Outcome {
	roll := src.Float64()
	if roll < odds.Jackpot {
		return OutcomeJackpot
	}

	subRoll := src.Float64()
	if subRoll < odds.ExplodeThreshold() {
		return OutcomeBadExplode
	}
	if subRoll < odds.SmallWin {
		return OutcomeSmallWin
	}
	return OutcomeMiss
}

func validateShoot(multiplier float64, pinataHits int) error {
	if !(multiplier >= 1) || math.IsInf(multiplier, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidMultiplier, multiplier)
	}
	if pinataHits < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHits, pinataHits)
	}
	return nil
}
