package records

import "time"

type Record struct {
	ID         int64     `json:"id"`
	RoundID    string    `json:"roundId"`
	BetAmount  float64   `json:"betAmount"`
	Multiplier float64   `json:"multiplier"`
	WinAmount  float64   `json:"winAmount"`
	BalAfter   float64   `json:"balAfter"`
	GamePhase  string    `json:"gamePhase"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type HistoryResponse struct {
	Records    []Record   `json:"records"`
	Pagination Pagination `json:"pagination"`
}

type StatsResponse struct {
	TotalBets    int     `json:"totalBets"`
	TotalWagered float64 `json:"totalWagered"`
	TotalWon     float64 `json:"totalWon"`
	NetProfit    float64 `json:"netProfit"`
	Jackpots     int     `json:"jackpots"`
	BiggestWin   float64 `json:"biggestWin"`
	PlayerRTP    float64 `json:"playerRTP"` // %
}
