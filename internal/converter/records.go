package converter

import (
	"flying_horse_backend/internal/api/dto/records"
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/money"
)

func ToRecords(recs []model.GameRecord) []records.Record {
	result := make([]records.Record, len(recs))
	for i, r := range recs {
		result[i] = records.Record{
			ID:         r.ID,
			RoundID:    r.RoundID,
			BetAmount:  money.FromCents(r.BetAmount),
			Multiplier: r.Multiplier,
			WinAmount:  money.FromCents(r.WinAmount),
			BalAfter:   money.FromCents(r.BalAfter),
			GamePhase:  r.GamePhase,
			Result:     r.Result,
			CreatedAt:  r.CreatedAt,
		}
	}
	return result
}

func ToPagination(p model.Pagination) records.Pagination {
	return records.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func ToHistoryResponse(page *model.RecordPage) records.HistoryResponse {
	return records.HistoryResponse{
		Records:    ToRecords(page.Records),
		Pagination: ToPagination(page.Pagination),
	}
}

func ToStatsResponse(st *model.PlayerStats) records.StatsResponse {
	return records.StatsResponse{
		TotalBets:    st.TotalBets,
		TotalWagered: money.FromCents(st.TotalWagered),
		TotalWon:     money.FromCents(st.TotalWon),
		NetProfit:    money.FromCents(st.TotalWon - st.TotalWagered),
		Jackpots:     st.Jackpots,
		BiggestWin:   money.FromCents(st.BiggestWin),
		PlayerRTP:    money.Percent(st.TotalWon, st.TotalWagered),
	}
}
