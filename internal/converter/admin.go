package converter

import (
	"flying_horse_backend/internal/api/dto/admin"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"
	"math"
)

func ToAdminPlayer(u model.User, totalGames int) admin.Player {
	return admin.Player{
		ID:         u.ID,
		Username:   u.Login,
		Nickname:   u.Name,
		Balance:    money.FromCents(u.Balance),
		Role:       u.Role,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		TotalGames: totalGames,
	}
}

func ToPlayersResponse(page *model.PlayerPage) admin.PlayersResponse {
	players := make([]admin.Player, len(page.Players))
	for i, p := range page.Players {
		players[i] = ToAdminPlayer(p.User, p.TotalGames)
	}
	return admin.PlayersResponse{
		Players:    players,
		Pagination: ToPagination(page.Pagination),
	}
}

func ToPlayerDetailResponse(d *model.PlayerDetail) admin.PlayerDetailResponse {
	return admin.PlayerDetailResponse{
		Player: ToAdminPlayer(d.User, 0),
		Stats: admin.PlayerStats{
			TotalGames:   d.Stats.TotalBets,
			TotalWagered: money.FromCents(d.Stats.TotalWagered),
			TotalWon:     money.FromCents(d.Stats.TotalWon),
			NetProfit:    money.FromCents(d.Stats.TotalWon - d.Stats.TotalWagered),
			Jackpots:     d.Stats.Jackpots,
			RTP:          money.Percent(d.Stats.TotalWon, d.Stats.TotalWagered),
		},
		RecentRecords: ToRecords(d.RecentRecords),
	}
}

func ToBalanceResponse(a *model.BalanceAdjustment) admin.BalanceResponse {
	return admin.BalanceResponse{
		PlayerID:        a.UserID,
		PreviousBalance: money.FromCents(a.PreviousBalance),
		Adjustment:      money.FromCents(a.Adjustment),
		NewBalance:      money.FromCents(a.NewBalance),
	}
}

func ToReportsResponse(r *model.Reports) admin.ReportsResponse {
	st := r.Overview.Stats

	daily := make([]admin.DailyReport, len(r.Daily))
	for i, d := range r.Daily {
		daily[i] = admin.DailyReport{
			Date:    d.Date.Format("2006-01-02"),
			Bets:    d.Bets,
			Wagered: money.FromCents(d.Wagered),
			Paid:    money.FromCents(d.Paid),
			Profit:  money.FromCents(d.Wagered - d.Paid),
		}
	}

	return admin.ReportsResponse{
		Overview: admin.Overview{
			TotalPlayers:  r.Overview.TotalPlayers,
			ActivePlayers: r.Overview.ActivePlayers,
			TotalBets:     st.TotalBets,
			TotalWagered:  money.FromCents(st.TotalWagered),
			TotalPaid:     money.FromCents(st.TotalWon),
			HouseEdge:     money.FromCents(st.TotalWagered - st.TotalWon),
			ActualRTP:     money.Percent(st.TotalWon, st.TotalWagered),
			Jackpots:      st.Jackpots,
		},
		DailyReport: daily,
		Live: admin.LiveRTP{
			TotalSpins:     r.Live.TotalSpins,
			CurrentRTP:     round2(r.Live.CurrentRTP),
			WindowRTP:      round2(r.Live.WindowRTP),
			WindowSize:     r.Live.WindowSize,
			TargetRTP:      round2(r.Live.TargetRTP),
			EmergencyMode:  r.Live.EmergencyMode,
			ActiveSessions: r.Sessions,
		},
	}
}

func ToGameConfigUpdate(req admin.GameConfigRequest) model.GameConfigUpdate {
	return model.GameConfigUpdate{
		BetList: req.BetList,
		RTP:     req.RTP,
	}
}

func ToGameConfigResponse(cfg *model.GameConfig) admin.GameConfigResponse {
	return admin.GameConfigResponse{
		BetList: cfg.BetList,
		RTP:     cfg.RTP,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
