package model

import "time"

// Состояние трекера RTP
type TrackerState struct {
	TotalWagers int     // Сколько всего ставок рассчитано
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100
	TargetRTP  float64 // Целевой RTP движка в процентах

	Alerts []DriftLog // Лог срабатываний

	EmergencyMode      bool   // RTP окна ушёл от целевого за критический порог
	EmergencyDirection string // "high" или "low"

	Window     []WagerResult // Окно последних ставок
	WindowRTP  float64       // RTP в окне
	WindowSize int           // Размер окна
}

// Запись о выходе RTP окна за порог
type DriftLog struct {
	Timestamp time.Time
	Direction string
	WindowRTP float64
	TargetRTP float64
	Profit    float64
}

// Результат ставки для окна
type WagerResult struct {
	Bet    float64
	Payout float64
}
