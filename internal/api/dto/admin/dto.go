package admin

import (
	"flying_horse_backend/internal/api/dto/records"
	"time"
)

type Player struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Nickname   string    `json:"nickname"`
	Balance    float64   `json:"balance"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	TotalGames int       `json:"totalGames,omitempty"`
}

type PlayersResponse struct {
	Players    []Player           `json:"players"`
	Pagination records.Pagination `json:"pagination"`
}

type PlayerStats struct {
	TotalGames   int     `json:"totalGames"`
	TotalWagered float64 `json:"totalWagered"`
	TotalWon     float64 `json:"totalWon"`
	NetProfit    float64 `json:"netProfit"`
	Jackpots     int     `json:"jackpots"`
	RTP          float64 `json:"rtp"` // %
}

type PlayerDetailResponse struct {
	Player        Player           `json:"player"`
	Stats         PlayerStats      `json:"stats"`
	RecentRecords []records.Record `json:"recentRecords"`
}

type BalanceRequest struct {
	Amount *float64 `json:"amount"`
	Reason string   `json:"reason"`
}

type BalanceResponse struct {
	PlayerID        int     `json:"playerId"`
	PreviousBalance float64 `json:"previousBalance"`
	Adjustment      float64 `json:"adjustment"`
	NewBalance      float64 `json:"newBalance"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type Overview struct {
	TotalPlayers  int     `json:"totalPlayers"`
	ActivePlayers int     `json:"activePlayers"`
	TotalBets     int     `json:"totalBets"`
	TotalWagered  float64 `json:"totalWagered"`
	TotalPaid     float64 `json:"totalPaid"`
	HouseEdge     float64 `json:"houseEdge"`
	ActualRTP     float64 `json:"actualRTP"` // %
	Jackpots      int     `json:"jackpots"`
}

type DailyReport struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Bets    int     `json:"bets"`
	Wagered float64 `json:"wagered"`
	Paid    float64 `json:"paid"`
	Profit  float64 `json:"profit"`
}

// LiveRTP RTP трекера процесса
type LiveRTP struct {
	TotalSpins     int     `json:"totalSpins"`
	CurrentRTP     float64 `json:"currentRTP"`
	WindowRTP      float64 `json:"windowRTP"`
	WindowSize     int     `json:"windowSize"`
	TargetRTP      float64 `json:"targetRTP"`
	EmergencyMode  bool    `json:"emergencyMode"`
	ActiveSessions int     `json:"activeSessions"`
}

type ReportsResponse struct {
	Overview    Overview      `json:"overview"`
	DailyReport []DailyReport `json:"dailyReport"`
	Live        LiveRTP       `json:"live"`
}

type GameConfigRequest struct {
	BetList []float64 `json:"betList"`
	RTP     *float64  `json:"rtp"`
}

type GameConfigResponse struct {
	BetList []float64 `json:"betList"`
	RTP     float64   `json:"rtp"`
}
