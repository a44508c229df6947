package model

import "time"

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NewPagination считает количество страниц
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// PlayerStats агрегаты по записям раундов. Суммы в центах
type PlayerStats struct {
	TotalBets    int
	TotalWagered int64
	TotalWon     int64
	BiggestWin   int64
	Jackpots     int
}

type PlayerFilter struct {
	Page   int
	Limit  int
	Search string
}

type PlayerSummary struct {
	User       User
	TotalGames int
}

type PlayerPage struct {
	Players    []PlayerSummary
	Pagination Pagination
}

type PlayerDetail struct {
	User          User
	Stats         PlayerStats
	RecentRecords []GameRecord
}

type BalanceAdjustment struct {
	UserID          int
	PreviousBalance int64
	Adjustment      int64
	NewBalance      int64
}

type DailyReport struct {
	Date    time.Time
	Bets    int
	Wagered int64
	Paid    int64
}

type Overview struct {
	TotalPlayers  int
	ActivePlayers int
	Stats         PlayerStats
}

// LiveRTP состояние трекера RTP в памяти процесса
type LiveRTP struct {
	TotalSpins    int
	TotalBet      float64
	TotalPayout   float64
	CurrentRTP    float64 // %
	WindowRTP     float64 // %
	WindowSize    int
	TargetRTP     float64 // %
	EmergencyMode bool
}

type Reports struct {
	Overview Overview
	Daily    []DailyReport
	Live     LiveRTP
	Sessions int // Живые игровые сессии
}
