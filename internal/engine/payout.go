package engine

import (
	"fmt"
	"math"

	"flying_horse_backend/pkg/money"
)

const (
	// bigSmallWinChance шанс крупного малого выигрыша x1.5
	bigSmallWinChance     = 0.1
	bigSmallWinMultiplier = 1.5
	smallWinMinMultiplier = 0.2
	smallWinSpread        = 0.6
)

// SmallWinAmount сумма малого выигрыша, округлённая вниз до цента.
// 10% случаев ставка x1.5, иначе равномерно от 0.2 до 0.8 ставки.
func SmallWinAmount(bet float64, src RandomSource) (float64, error) {
	if !(bet > 0) || math.IsInf(bet, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidBet, bet)
	}

	if src.Float64() < bigSmallWinChance {
		return money.FloorCents(bet * bigSmallWinMultiplier), nil
	}
	multiplier := smallWinMinMultiplier + src.Float64()*smallWinSpread
	return money.FloorCents(bet * multiplier), nil
}
