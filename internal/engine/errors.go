package engine

import "errors"

// Нарушения контракта вызывающей стороной. Движок не чинит входные данные
// молча: ошибка в ставке или множителе означает баг выше по стеку.
var (
	ErrInvalidBet        = errors.New("bet amount must be positive")
	ErrInvalidMultiplier = errors.New("current multiplier must be >= 1")
	ErrInvalidHits       = errors.New("pinata hits must be non-negative")
	ErrInvalidRTP        = errors.New("target rtp must be in (0, 1]")

	// ErrSessionClosed движок закрытой сессии заново не создаётся
	ErrSessionClosed = errors.New("game session is closed")
)
