package model

import (
	"fmt"
	"sort"
)

const (
	MinRTP        = 0.5
	MaxRTP        = 1.0
	MinBetListLen = 5
)

// GameConfig настройки игры, общие для всех игроков
type GameConfig struct {
	BetList  []float64
	MulSteps []float64 // Лестница множителей, верхняя ступень ограничивает множитель раунда
	RTP      float64
}

// GameConfigUpdate изменение от админа. nil поле не меняется
type GameConfigUpdate struct {
	BetList []float64
	RTP     *float64
}

// ValidateRTP RTP должен быть в [0.5, 1.0]
func ValidateRTP(rtp float64) error {
	if !(rtp >= MinRTP && rtp <= MaxRTP) {
		return fmt.Errorf("%w: %v", ErrInvalidRTP, rtp)
	}
	return nil
}

// ValidateBetList минимум 5 положительных ставок
func ValidateBetList(bets []float64) error {
	if len(bets) < MinBetListLen {
		return fmt.Errorf("%w: got %d", ErrBetListTooShort, len(bets))
	}
	for _, b := range bets {
		if !(b > 0) {
			return fmt.Errorf("%w: %v", ErrInvalidBetList, b)
		}
	}
	return nil
}

// SortedCopy копия ставок по возрастанию
func SortedCopy(bets []float64) []float64 {
	out := make([]float64, len(bets))
	copy(out, bets)
	sort.Float64s(out)
	return out
}
