package model

import "time"

// Фазы раунда
const (
	PhaseLaunch = "launch"
	PhaseShoot  = "shoot"
)

// Результаты в записи раунда
const (
	ResultWin        = "win"
	ResultLose       = "lose"
	ResultJackpot    = "jackpot"
	ResultSmallWin   = "small_win"
	ResultBadExplode = "bad_explode"
	ResultMiss       = "miss"
)

type Launch struct {
	Bet              float64
	SpringMultiplier float64 // Множитель пружины, выбранный игроком (только для записи)
}

type LaunchResult struct {
	RoundID          string
	IsWin            bool
	WinAmount        float64
	LaunchMultiplier float64
	Balance          float64
}

type Shoot struct {
	Bet               float64
	CurrentMultiplier float64
	PinataHits        int
	RoundID           string // Пустой, если клиент его не передал
}

type ShootResult struct {
	RoundID   string
	Result    string // JACKPOT, SMALL_WIN, BAD_EXPLODE, MISS
	WinAmount float64
	Balance   float64
}

// GameRecord запись в game_records. Суммы в центах
type GameRecord struct {
	ID         int64
	RoundID    string
	UserID     int
	BetAmount  int64
	Multiplier float64
	WinAmount  int64
	BalAfter   int64
	GamePhase  string
	Result     string
	CreatedAt  time.Time
}

type RecordPage struct {
	Records    []GameRecord
	Pagination Pagination
}
